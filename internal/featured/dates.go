package featured

import "time"

// 档期窗口的比较一律以自然日为粒度
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay 返回当天最后一纳秒，使结束日期覆盖到当天结束
func endOfDay(t time.Time) time.Time {
	return truncateToDay(t).Add(24*time.Hour - time.Nanosecond)
}
