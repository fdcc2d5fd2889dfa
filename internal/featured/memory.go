package featured

import (
	"sort"
	"sync"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

// MemoryRepository 内存实现，供测试和不依赖数据库的工具使用。
// 所有方法返回副本，调用方修改返回值不会影响存储的记录。
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	slots  map[int64]*domain.FeaturedSlot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID: 1,
		slots:  make(map[int64]*domain.FeaturedSlot),
	}
}

func (r *MemoryRepository) Create(slot *domain.FeaturedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot.ID = r.nextID
	r.nextID++
	slot.CreatedAt = time.Now()
	slot.Version = 1

	stored := *slot
	r.slots[slot.ID] = &stored
	return nil
}

func (r *MemoryRepository) Update(slot *domain.FeaturedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.slots[slot.ID]
	if !ok {
		return ErrNotFound
	}

	slot.CreatedAt = existing.CreatedAt
	slot.Version = existing.Version + 1

	stored := *slot
	r.slots[slot.ID] = &stored
	return nil
}

func (r *MemoryRepository) GetByID(id int64) (*domain.FeaturedSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, ok := r.slots[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *slot
	return &copied, nil
}

func (r *MemoryRepository) GetAll() ([]*domain.FeaturedSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slots := make([]*domain.FeaturedSlot, 0, len(r.slots))
	for _, slot := range r.slots {
		copied := *slot
		slots = append(slots, &copied)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })

	return slots, nil
}
