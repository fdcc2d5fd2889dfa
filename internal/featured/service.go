package featured

import (
	"errors"
	"strings"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
)

// Service 面向操作员两个工作流的编排层：
// 档期管理（创建/编辑、冲突提示、按名称回填）和全局上线开关。
type Service struct {
	repo    Repository
	overlap *OverlapChecker
	names   *NameIndex
	live    *LiveSlotController
	now     func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		overlap: NewOverlapChecker(repo),
		names:   NewNameIndex(repo),
		live:    NewLiveSlotController(repo),
		now:     time.Now,
	}
}

// Draft 创建或编辑档期的输入，ID 为 0 表示创建
type Draft struct {
	ID            int64
	Name          string
	Description   string
	ImageRef      string
	ContactNumber string
	SocialLinks   domain.SocialLinks
	StartDate     *time.Time
	EndDate       *time.Time
	IsLive        bool
}

// SaveResult 写入结果以及窗口冲突提示
type SaveResult struct {
	Slot     *domain.FeaturedSlot `json:"slot"`
	Overlaps []Overlap            `json:"overlaps"`
}

// CreateOrUpdate 校验草稿、计算冲突提示并写入。冲突信息只随结果返回给操作员，
// 不会阻止写入。草稿要求上线时经由 LiveSlotController 统一处理，
// “创建即上线”同样不会破坏全局至多一个上线档期的不变量。
func (s *Service) CreateOrUpdate(draft *Draft) (*SaveResult, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	overlaps := []Overlap{}
	if draft.StartDate != nil && draft.EndDate != nil {
		var err error
		overlaps, err = s.overlap.FindOverlaps(*draft.StartDate, *draft.EndDate, draft.ID)
		if err != nil {
			return nil, err
		}
	}

	var slot *domain.FeaturedSlot
	if draft.ID > 0 {
		existing, err := s.repo.GetByID(draft.ID)
		if err != nil {
			return nil, err
		}

		existing.Name = draft.Name
		existing.Description = draft.Description
		existing.ImageRef = draft.ImageRef
		existing.ContactNumber = draft.ContactNumber
		existing.SocialLinks = draft.SocialLinks
		existing.StartDate = draft.StartDate
		existing.EndDate = draft.EndDate
		// 编辑不会隐式下线档期，下线只通过全局开关进行

		if err := s.repo.Update(existing); err != nil {
			return nil, err
		}
		slot = existing
	} else {
		slot = &domain.FeaturedSlot{
			Name:          draft.Name,
			Description:   draft.Description,
			ImageRef:      draft.ImageRef,
			ContactNumber: draft.ContactNumber,
			SocialLinks:   draft.SocialLinks,
			StartDate:     draft.StartDate,
			EndDate:       draft.EndDate,
		}
		if err := s.repo.Create(slot); err != nil {
			return nil, err
		}
	}

	if draft.IsLive && !slot.IsLive {
		if err := s.live.SetLive(slot.ID); err != nil {
			return nil, err
		}
		updated, err := s.repo.GetByID(slot.ID)
		if err != nil {
			return nil, err
		}
		slot = updated
	}

	return &SaveResult{Slot: slot, Overlaps: overlaps}, nil
}

func validateDraft(draft *Draft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &ValidationError{Message: "名称不能为空"}
	}
	if strings.TrimSpace(draft.Description) == "" {
		return &ValidationError{Message: "简介不能为空"}
	}
	if draft.StartDate != nil && draft.EndDate != nil &&
		truncateToDay(*draft.StartDate).After(truncateToDay(*draft.EndDate)) {
		return &ValidationError{Message: "开始日期不能晚于结束日期"}
	}
	return nil
}

// SlotList 全部档期以及当前正在展示的档期（如果有）
type SlotList struct {
	Slots    []*domain.FeaturedSlot `json:"slots"`
	LiveID   int64                  `json:"liveId,omitempty"`
	LiveName string                 `json:"liveName,omitempty"`
}

func (s *Service) ListSlots() (*SlotList, error) {
	slots, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	list := &SlotList{Slots: slots}
	for _, slot := range slots {
		if slot.IsLive {
			list.LiveID = slot.ID
			list.LiveName = slot.Name
			break
		}
	}

	return list, nil
}

// ToggleResult 全局开关的执行结果
type ToggleResult struct {
	Live    bool                 `json:"live"`
	Slot    *domain.FeaturedSlot `json:"slot,omitempty"`
	NoMatch bool                 `json:"noMatch,omitempty"`
}

// ToggleGlobalLive 把两个工作流收敛成一个开关：有档期上线就全部下线，
// 否则把覆盖今天的档期上线。没有档期覆盖今天时不做任何修改，
// 结果中的 NoMatch 交给调用方转成提示信息。
func (s *Service) ToggleGlobalLive() (*ToggleResult, error) {
	list, err := s.ListSlots()
	if err != nil {
		return nil, err
	}

	if list.LiveID > 0 {
		if err := s.live.ToggleOff(); err != nil {
			return nil, err
		}
		return &ToggleResult{Live: false}, nil
	}

	slot, err := s.live.ToggleOn(s.now())
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return &ToggleResult{Live: false, NoMatch: true}, nil
		}
		return nil, err
	}

	return &ToggleResult{Live: true, Slot: slot}, nil
}

// SetLive 直接将指定档期上线
func (s *Service) SetLive(id int64) error {
	return s.live.SetLive(id)
}

// ClearLive 下线所有档期
func (s *Service) ClearLive() error {
	return s.live.Clear()
}

// CheckAvailability 输入日期时的实时冲突提示
func (s *Service) CheckAvailability(start, end time.Time, excludeID int64) ([]Overlap, error) {
	return s.overlap.FindOverlaps(start, end, excludeID)
}

func (s *Service) DistinctNames() ([]string, error) {
	return s.names.DistinctNames()
}

func (s *Service) SuggestNames(partial string) ([]string, error) {
	return s.names.Suggest(partial)
}

func (s *Service) PrefillByName(name string) (*DescriptiveFields, error) {
	return s.names.Prefill(name)
}
