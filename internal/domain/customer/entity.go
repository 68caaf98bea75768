package customer

import "time"

// Customer は顧客エンティティを表す
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New は新しい顧客を作成する
func New(firstName, lastName, address string) *Customer {
	now := time.Now()
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate は顧客の検証を行う
func (c *Customer) Validate() error {
	if c.FirstName == "" {
		return ErrFirstNameRequired
	}
	if c.LastName == "" {
		return ErrLastNameRequired
	}
	if c.Address == "" {
		return ErrAddressRequired
	}
	return nil
}

// UpdateInput は顧客更新で変更可能なフィールドのみを列挙する
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Address   *string
}
