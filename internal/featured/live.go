package featured

import (
	"sync"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

// LiveSlotController 管理整个档期集合的上线状态。
// 全局不变量：任何可观察时刻至多有一个档期处于上线状态。
// 所有涉及上线状态的写入都经过同一把互斥锁，两个并发的 SetLive
// 不可能留下多于一个上线档期。
type LiveSlotController struct {
	mu   sync.Mutex
	repo Repository
}

func NewLiveSlotController(repo Repository) *LiveSlotController {
	return &LiveSlotController{repo: repo}
}

// SetLive 将目标档期置为上线并取消其他所有档期的上线状态。
// 目标不存在时返回 ErrNotFound，不产生任何修改。
func (c *LiveSlotController) SetLive(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots, err := c.repo.GetAll()
	if err != nil {
		return err
	}

	var target *domain.FeaturedSlot
	for _, slot := range slots {
		if slot.ID == id {
			target = slot
			break
		}
	}
	if target == nil {
		return ErrNotFound
	}

	// 先取消其他档期再设置目标档期，中间状态最多出现零个上线档期
	for _, slot := range slots {
		if slot.ID == id || !slot.IsLive {
			continue
		}
		slot.IsLive = false
		if err := c.repo.Update(slot); err != nil {
			return err
		}
	}

	if !target.IsLive {
		target.IsLive = true
		if err := c.repo.Update(target); err != nil {
			return err
		}
	}

	return nil
}

// Clear 取消所有档期的上线状态。幂等，没有上线档期时什么都不做。
func (c *LiveSlotController) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	slots, err := c.repo.GetAll()
	if err != nil {
		return err
	}

	for _, slot := range slots {
		if !slot.IsLive {
			continue
		}
		slot.IsLive = false
		if err := c.repo.Update(slot); err != nil {
			return err
		}
	}

	return nil
}

// ResolveForDate 找到展示窗口覆盖 date 的档期，结束日期覆盖到当天最后一刻。
// 没有档期覆盖时返回 ErrNoMatch。由于冲突只做提示，多个档期可能同时覆盖同一天，
// 此时取开始日期最早者，仍并列时取 ID 最小者。
func (c *LiveSlotController) ResolveForDate(date time.Time) (*domain.FeaturedSlot, error) {
	slots, err := c.repo.GetAll()
	if err != nil {
		return nil, err
	}

	var best *domain.FeaturedSlot
	for _, slot := range slots {
		if !slot.Schedulable() {
			continue
		}
		if date.Before(truncateToDay(*slot.StartDate)) || date.After(endOfDay(*slot.EndDate)) {
			continue
		}

		if best == nil {
			best = slot
			continue
		}

		slotStart := truncateToDay(*slot.StartDate)
		bestStart := truncateToDay(*best.StartDate)
		if slotStart.Before(bestStart) || (slotStart.Equal(bestStart) && slot.ID < best.ID) {
			best = slot
		}
	}

	if best == nil {
		return nil, ErrNoMatch
	}

	return best, nil
}

// ToggleOn 将覆盖 now 的档期上线。没有档期覆盖时返回 ErrNoMatch 且不做任何修改。
func (c *LiveSlotController) ToggleOn(now time.Time) (*domain.FeaturedSlot, error) {
	slot, err := c.ResolveForDate(now)
	if err != nil {
		return nil, err
	}

	if err := c.SetLive(slot.ID); err != nil {
		return nil, err
	}

	// 重新读取，让返回值携带最新的上线状态
	return c.repo.GetByID(slot.ID)
}

// ToggleOff 等价于 Clear
func (c *LiveSlotController) ToggleOff() error {
	return c.Clear()
}
