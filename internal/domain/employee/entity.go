package employee

import "time"

// Employee は従業員エンティティを表す
type Employee struct {
	ID        int64
	HotelID   int64
	Name      string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate は従業員の検証を行う
func (e *Employee) Validate() error {
	if e.Name == "" {
		return ErrNameRequired
	}
	if e.HotelID == 0 {
		return ErrHotelIDRequired
	}
	return nil
}

// UpdateInput は従業員更新で変更可能なフィールドのみを列挙する
// HotelID の変更は別ホテルへの異動を意味し、ガードルールの対象となる
type UpdateInput struct {
	Name    *string
	Role    *string
	HotelID *int64
}
