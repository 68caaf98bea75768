package interval

import "time"

// Interval は宿泊期間を表す閉区間（両端の日付を含む）
// 日付のみを扱い、時刻成分は持たない
type Interval struct {
	Start time.Time
	End   time.Time
}

// New は新しい期間を作成する
// 終了日が開始日以前の場合は ErrInvalidRange を返す
func New(start, end time.Time) (Interval, error) {
	s := DateOf(start)
	e := DateOf(end)
	if !e.After(s) {
		return Interval{}, ErrInvalidRange
	}
	return Interval{Start: s, End: e}, nil
}

// DateOf は時刻成分を切り捨てた日付を返す（UTC固定）
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps は2つの期間が重なるかを返す
// 境界日を共有する場合も重複とみなす（包含境界ルール）
func (i Interval) Overlaps(o Interval) bool {
	return !i.Start.After(o.End) && !i.End.Before(o.Start)
}

// ContainsDate は指定日が期間内に含まれるかを返す
func (i Interval) ContainsDate(d time.Time) bool {
	day := DateOf(d)
	return !day.Before(i.Start) && !day.After(i.End)
}

// Days は期間の日数を返す（両端を含む）
func (i Interval) Days() int {
	return int(i.End.Sub(i.Start).Hours()/24) + 1
}

// StartsBefore は期間の開始日が指定日より前かを返す
func (i Interval) StartsBefore(d time.Time) bool {
	return i.Start.Before(DateOf(d))
}
