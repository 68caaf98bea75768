package employee

import "errors"

// Employee ドメインのエラー定義
var (
	ErrEmployeeNotFound = errors.New("従業員が見つかりません")
	ErrNameRequired     = errors.New("氏名は必須です")
	ErrHotelIDRequired  = errors.New("所属ホテルは必須です")

	// ガードルール違反
	ErrEmployeeManagesHotel      = errors.New("従業員はホテルの支配人に指定されているため変更できません")
	ErrEmployeeHasActiveRentings = errors.New("従業員には対応中の滞在があるため変更できません")
)
