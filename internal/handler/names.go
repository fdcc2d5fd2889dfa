package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
)

func (h *Handler) GetDistinctNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.DistinctNames()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取名称列表成功", names)
}

// SuggestNames 输入联想。结果只做提示且过期即可接受，
// 用 redis 按查询词做短 TTL 缓存，缓存不可用时直接现算。
func (h *Handler) SuggestNames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	cacheKey := fmt.Sprintf("featured_suggest_%s", q)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if cached, err := h.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		names := []string{}
		if err := json.Unmarshal([]byte(cached), &names); err == nil {
			h.successResponse(w, r, "获取名称联想成功", names)
			return
		}
	}

	names, err := h.service.SuggestNames(q)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if encoded, err := json.Marshal(names); err == nil {
		if err := h.redisClient.Set(ctx, cacheKey, encoded, time.Duration(h.config.Redis.NameCacheTTL)*time.Second).Err(); err != nil {
			slog.Warn("写入名称联想缓存失败", "error", err)
		}
	}

	h.successResponse(w, r, "获取名称联想成功", names)
}

func (h *Handler) PrefillByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		h.errorResponse(w, r, "必须指定 name")
		return
	}

	fields, err := h.service.PrefillByName(name)
	if err != nil {
		switch {
		case errors.Is(err, featured.ErrNotFound):
			h.errorResponse(w, r, "没有同名的推荐档期可供回填")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取回填内容成功", fields)
}

// 写入档期后清掉空查询词的联想缓存（打开表单时的默认联想），
// 其余按查询词分 key 的缓存靠短 TTL 自然过期。
func (h *Handler) invalidateNameCache() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, "featured_suggest_").Err(); err != nil {
		slog.Warn("清除名称联想缓存失败", "error", err)
	}
}
