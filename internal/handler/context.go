package handler

type ContextKey string

var (
	FeaturedSlotCtx ContextKey = "featuredSlot"
)
