package seed

import (
	"log/slog"

	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
	"github.com/zhanxing-dev/featured-manager/backend/internal/utils"
)

// SeedRandomSlots 插入随机推荐档期。走 Service 而不是直接写 repository，
// 种子数据也经过同样的校验和冲突提示路径。
func SeedRandomSlots(svc *featured.Service, n int) int {
	cnt := 0
	for i := 0; i < n; i++ {
		slot := utils.GenerateRandomFeaturedSlot()
		draft := &featured.Draft{
			Name:          slot.Name,
			Description:   slot.Description,
			ImageRef:      slot.ImageRef,
			ContactNumber: slot.ContactNumber,
			SocialLinks:   slot.SocialLinks,
			StartDate:     slot.StartDate,
			EndDate:       slot.EndDate,
		}

		result, err := svc.CreateOrUpdate(draft)
		if err != nil {
			slog.Error("无法插入推荐档期", slog.String("error", err.Error()))
			continue
		}

		if len(result.Overlaps) > 0 {
			slog.Info("插入的档期与现有档期窗口重叠", "id", result.Slot.ID, "overlaps", len(result.Overlaps))
		}

		cnt++
	}

	return cnt
}

// ActivateToday 把覆盖今天的档期上线，方便本地联调后台的展示状态
func ActivateToday(svc *featured.Service) {
	list, err := svc.ListSlots()
	if err != nil {
		slog.Error("无法获取档期列表", slog.String("error", err.Error()))
		return
	}

	if list.LiveID > 0 {
		slog.Info("已有档期在展示，跳过上线", "id", list.LiveID, "name", list.LiveName)
		return
	}

	result, err := svc.ToggleGlobalLive()
	if err != nil {
		slog.Error("无法开启推荐展示", slog.String("error", err.Error()))
		return
	}

	if result.NoMatch {
		slog.Info("没有档期覆盖今天，跳过上线")
		return
	}

	slog.Info("推荐档期已上线", "id", result.Slot.ID, "name", result.Slot.Name)
}
