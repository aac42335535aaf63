package router

import (
	"todoapp/internal/handlers/auth"
	"todoapp/internal/handlers/root"
	"todoapp/internal/handlers/todo"
	"todoapp/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Root root.Handler
	Auth auth.Handler
	User user.Handler
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain at the root of the mux. Auth-guarded
// groups attach their own middleware inside their Router method.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Root.Router(router)
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.User.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
