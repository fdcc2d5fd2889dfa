package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/domain"
	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
)

const slotDateLayout = "2006-01-02"

func parseSlotDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(slotDateLayout, value)
	if err != nil {
		return nil, errors.New("日期格式应为 " + slotDateLayout)
	}
	return &date, nil
}

type socialLinksRequest struct {
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Website   string `json:"website" validate:"omitempty,url"`
}

func (h *Handler) CreateFeaturedSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string             `json:"name" validate:"required"`
		Description   string             `json:"description" validate:"required"`
		ImageRef      string             `json:"imageRef"`
		ContactNumber string             `json:"contactNumber"`
		SocialLinks   socialLinksRequest `json:"socialLinks"`
		StartDate     string             `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
		EndDate       string             `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
		IsLive        bool               `json:"isLive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := parseSlotDate(req.StartDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	endDate, err := parseSlotDate(req.EndDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft := &featured.Draft{
		Name:          req.Name,
		Description:   req.Description,
		ImageRef:      req.ImageRef,
		ContactNumber: req.ContactNumber,
		SocialLinks: domain.SocialLinks{
			Instagram: req.SocialLinks.Instagram,
			Facebook:  req.SocialLinks.Facebook,
			Website:   req.SocialLinks.Website,
		},
		StartDate: startDate,
		EndDate:   endDate,
		IsLive:    req.IsLive,
	}

	result, err := h.service.CreateOrUpdate(draft)
	if err != nil {
		h.saveError(w, r, err)
		return
	}

	h.invalidateNameCache()
	if result.Slot.IsLive {
		h.publishFeatureEvent(domain.FeatureEventActivated, result.Slot)
	}

	h.successResponse(w, r, "创建推荐档期成功", result)
}

func (h *Handler) UpdateFeaturedSlot(w http.ResponseWriter, r *http.Request) {
	slot := r.Context().Value(FeaturedSlotCtx).(*domain.FeaturedSlot)

	var req struct {
		Name          *string             `json:"name"`
		Description   *string             `json:"description"`
		ImageRef      *string             `json:"imageRef"`
		ContactNumber *string             `json:"contactNumber"`
		SocialLinks   *socialLinksRequest `json:"socialLinks"`
		StartDate     *string             `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
		EndDate       *string             `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
		IsLive        bool                `json:"isLive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	draft := &featured.Draft{
		ID:            slot.ID,
		Name:          slot.Name,
		Description:   slot.Description,
		ImageRef:      slot.ImageRef,
		ContactNumber: slot.ContactNumber,
		SocialLinks:   slot.SocialLinks,
		StartDate:     slot.StartDate,
		EndDate:       slot.EndDate,
		IsLive:        req.IsLive,
	}

	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.ImageRef != nil {
		draft.ImageRef = *req.ImageRef
	}
	if req.ContactNumber != nil {
		draft.ContactNumber = *req.ContactNumber
	}
	if req.SocialLinks != nil {
		draft.SocialLinks = domain.SocialLinks{
			Instagram: req.SocialLinks.Instagram,
			Facebook:  req.SocialLinks.Facebook,
			Website:   req.SocialLinks.Website,
		}
	}
	// 日期字段传空字符串表示清除，传 null 表示保持不变
	if req.StartDate != nil {
		startDate, err := parseSlotDate(*req.StartDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		draft.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseSlotDate(*req.EndDate)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		draft.EndDate = endDate
	}

	result, err := h.service.CreateOrUpdate(draft)
	if err != nil {
		h.saveError(w, r, err)
		return
	}

	h.invalidateNameCache()
	if !slot.IsLive && result.Slot.IsLive {
		h.publishFeatureEvent(domain.FeatureEventActivated, result.Slot)
	}

	h.successResponse(w, r, "更新推荐档期成功", result)
}

func (h *Handler) saveError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *featured.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.errorResponse(w, r, validationErr.Message)
	case errors.Is(err, featured.ErrNotFound):
		// id 不存在或版本冲突，提示操作员刷新后重试
		h.errorResponse(w, r, "推荐档期不存在，请刷新后重试")
	default:
		h.internalServerError(w, r, err)
	}
}

func (h *Handler) GetFeaturedSlot(w http.ResponseWriter, r *http.Request) {
	slot := r.Context().Value(FeaturedSlotCtx).(*domain.FeaturedSlot)

	h.successResponse(w, r, "获取推荐档期成功", slot)
}

func (h *Handler) GetAllFeaturedSlots(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListSlots()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取推荐档期列表成功", list)
}

func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" || endParam == "" {
		h.errorResponse(w, r, "必须同时指定 start 和 end")
		return
	}

	startDate, err := parseSlotDate(startParam)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	endDate, err := parseSlotDate(endParam)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	var excludeID int64
	if excludeParam := r.URL.Query().Get("exclude"); excludeParam != "" {
		excludeID, err = strconv.ParseInt(excludeParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "exclude 参数无效")
			return
		}
	}

	overlaps, err := h.service.CheckAvailability(*startDate, *endDate, excludeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "检测窗口冲突成功", overlaps)
}
