package featured

import "github.com/zhanxing-dev/featured-manager/backend/internal/domain"

// Repository 档期的持久化接口，纯 CRUD，不包含业务规则。
// 全局不变量（同一时间至多一个档期上线）由 LiveSlotController 保证。
type Repository interface {
	// Create 插入档期并回填 ID、CreatedAt 和 Version
	Create(slot *domain.FeaturedSlot) error
	// Update 按 ID 更新档期，目标不存在时返回 ErrNotFound
	Update(slot *domain.FeaturedSlot) error
	// GetByID 目标不存在时返回 ErrNotFound
	GetByID(id int64) (*domain.FeaturedSlot, error)
	// GetAll 返回所有档期，按 ID 升序，保证遍历顺序稳定
	GetAll() ([]*domain.FeaturedSlot, error)
}
