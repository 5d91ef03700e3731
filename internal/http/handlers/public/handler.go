package public

import "github.com/suvai-store/internal/provider"

// Handler serves the storefront API. No authentication; every endpoint is
// guest-facing.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
