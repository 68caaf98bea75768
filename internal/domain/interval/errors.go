package interval

import "errors"

// Interval ドメインのエラー定義
var (
	ErrInvalidRange    = errors.New("終了日は開始日より後である必要があります")
	ErrStartDateInPast = errors.New("開始日に過去の日付は指定できません")
)
