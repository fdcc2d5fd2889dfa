package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/zhanxing-dev/featured-manager/backend/internal/config"
	"github.com/zhanxing-dev/featured-manager/backend/internal/featured"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   featured.Repository
	service      *featured.Service
	translator   ut.Translator
	eventChannel *amqp.Channel
	redisClient  *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo featured.Repository, svc *featured.Service, eventCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		service:      svc,
		translator:   trans,
		eventChannel: eventCh,
		redisClient:  rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/featured-slots", func(r chi.Router) {
		r.Post("/", h.CreateFeaturedSlot)
		r.Get("/", h.GetAllFeaturedSlots)
		r.Get("/availability", h.CheckAvailability)

		// 全局上线开关，面向运营后台的单个按钮
		r.Route("/live", func(r chi.Router) {
			r.Post("/toggle", h.ToggleGlobalLive)
			r.Delete("/", h.ClearLive)
		})

		r.Route("/names", func(r chi.Router) {
			r.Get("/", h.GetDistinctNames)
			r.Get("/suggest", h.SuggestNames)
			r.Get("/prefill", h.PrefillByName)
		})

		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.featuredSlot)
			r.Get("/", h.GetFeaturedSlot)
			r.Patch("/", h.UpdateFeaturedSlot)
			r.Post("/live", h.SetLive)
		})
	})
}
