package handler

import (
	"errors"
	"net/http"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
)

func (h *Handler) SetLive(w http.ResponseWriter, r *http.Request) {
	slot := r.Context().Value(FeaturedSlotCtx).(*domain.FeaturedSlot)

	if err := h.service.SetLive(slot.ID); err != nil {
		switch {
		case errors.Is(err, featured.ErrNotFound):
			h.errorResponse(w, r, "推荐档期不存在，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishFeatureEvent(domain.FeatureEventActivated, slot)

	h.successResponse(w, r, "推荐档期已上线展示", nil)
}

func (h *Handler) ClearLive(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearLive(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.publishFeatureEvent(domain.FeatureEventCleared, nil)

	h.successResponse(w, r, "已关闭推荐展示", nil)
}

func (h *Handler) ToggleGlobalLive(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ToggleGlobalLive()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	switch {
	case result.NoMatch:
		// 不是故障：今天没有档期可展示，提示操作员去补档期
		h.publishFeatureEvent(domain.FeatureEventNoCoverage, nil)
		h.errorResponse(w, r, "今天没有可展示的推荐档期")
	case result.Live:
		h.publishFeatureEvent(domain.FeatureEventActivated, result.Slot)
		h.successResponse(w, r, "推荐档期已上线展示", result)
	default:
		h.publishFeatureEvent(domain.FeatureEventCleared, nil)
		h.successResponse(w, r, "已关闭推荐展示", result)
	}
}
