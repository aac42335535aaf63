package root

import (
	"net/http"
	"todoapp/config"
	"todoapp/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{cfg: cfg}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/", h.Welcome)
}

// Welcome answers the root path so load balancers and humans get a quick
// liveness signal.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	response.WithMessage(w, http.StatusOK, "Welcome to "+h.cfg.App.Name)
}
