package featured

import "time"

// Overlap 与候选窗口冲突的档期摘要，用于操作员提示
type Overlap struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	EndDate time.Time `json:"endDate"`
}

// OverlapChecker 对档期快照做只读的窗口冲突检测。
// 检测结果仅用于提示操作员，任何冲突都不会阻止写入。
type OverlapChecker struct {
	repo Repository
}

func NewOverlapChecker(repo Repository) *OverlapChecker {
	return &OverlapChecker{repo: repo}
}

// FindOverlaps 按闭区间规则判定：[s1,e1] 与 [s2,e2] 相交当且仅当 s1 <= e2 且 s2 <= e1，
// 端点相接（一个档期结束当天另一个开始）也算冲突。缺少日期的档期不参与检测。
// excludeID 大于 0 时从结果中排除对应档期，用于编辑时避免和自己冲突。
func (c *OverlapChecker) FindOverlaps(start, end time.Time, excludeID int64) ([]Overlap, error) {
	slots, err := c.repo.GetAll()
	if err != nil {
		return nil, err
	}

	s1 := truncateToDay(start)
	e1 := truncateToDay(end)

	overlaps := []Overlap{}
	for _, slot := range slots {
		if !slot.Schedulable() {
			continue
		}
		if excludeID > 0 && slot.ID == excludeID {
			continue
		}

		s2 := truncateToDay(*slot.StartDate)
		e2 := truncateToDay(*slot.EndDate)

		if !s1.After(e2) && !s2.After(e1) {
			overlaps = append(overlaps, Overlap{
				ID:      slot.ID,
				Name:    slot.Name,
				EndDate: *slot.EndDate,
			})
		}
	}

	return overlaps, nil
}
