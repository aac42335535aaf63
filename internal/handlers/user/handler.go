package user

import (
	"net/http"
	"todoapp/infras/otel"
	userModel "todoapp/internal/domains/user/model"
	userDto "todoapp/internal/domains/user/model/dto"
	"todoapp/internal/domains/user/repository"
	"todoapp/shared"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/transport/http/middleware"
	"todoapp/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	userRepo   repository.User
	middleware middleware.Auth
	otel       otel.Otel
}

func New(userRepo repository.User, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		userRepo:   userRepo,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Use(handler.middleware.Auth)
		r.Get("/me", handler.Me)
	})
}

// Me returns the account behind the presented token.
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := handler.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		response.WithError(w, err)

		return
	}

	if user.ID == "" {
		response.WithError(w, failure.InvalidCredentials)

		return
	}

	var res userDto.UserResponse
	res.FromModel(user)

	response.WithJSON(w, http.StatusOK, res)
}
