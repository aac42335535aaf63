package auth

import (
	"net/http"
	"strings"
	"todoapp/infras/otel"
	"todoapp/internal/domains/auth/model/dto"
	"todoapp/internal/domains/auth/service"
	"todoapp/shared/constant"
	"todoapp/shared/failure"
	"todoapp/shared/validator"
	"todoapp/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/register", handler.Register)
	r.Post("/token", handler.Token)
}

// Register handles user registration and returns the created account.
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Token exchanges credentials for a bearer token. The endpoint accepts the
// usual password-grant form encoding and plain JSON bodies.
func (handler *Handler) Token(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Token")
	defer scope.End()

	req, err := parseLoginRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse login request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

func parseLoginRequest(r *http.Request) (req dto.LoginRequest, err error) {
	contentType := r.Header.Get(constant.RequestHeaderContentType)

	if strings.HasPrefix(contentType, constant.ContentTypeJSON) {
		if err = validator.Validate(r.Body, &req); err != nil {
			return req, err //nolint:wrapcheck
		}

		return req, nil
	}

	if err = r.ParseForm(); err != nil {
		return req, failure.BadRequest(err) //nolint:wrapcheck
	}

	req.Username = r.PostForm.Get("username")
	req.Password = r.PostForm.Get("password")

	if err = validator.ValidateStruct(&req); err != nil {
		return req, err //nolint:wrapcheck
	}

	return req, nil
}
