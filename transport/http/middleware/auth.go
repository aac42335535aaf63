package middleware

import (
	"context"
	"net/http"
	"todoapp/infras/jwt"
	"todoapp/infras/otel"
	userModel "todoapp/internal/domains/user/model"
	userRepo "todoapp/internal/domains/user/repository"
	"todoapp/shared/constant"
	gDto "todoapp/shared/dto"
	"todoapp/shared/failure"
	"todoapp/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth guards routes behind a valid bearer token.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	userRepo   userRepo.User
	otel       otel.Otel
}

func NewAuthMiddleware(jwtService jwt.JWT, userRepo userRepo.User, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		userRepo:   userRepo,
		otel:       otel,
	}
}

// Auth validates the bearer token and resolves its subject to a stored
// account. Every failure before the active check (missing header, malformed
// header, bad signature, expiry, unknown subject) collapses into the same
// unauthorized response so the middleware leaks nothing about which step
// rejected the request. A valid token whose account is deactivated is the
// one distinct outcome, reported as forbidden.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.InvalidCredentials)

			return
		}

		username, err := m.jwtService.Validate(tokenString)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, failure.InvalidCredentials)

			return
		}

		user, err := m.userRepo.Get(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldUsername,
					Operator: gDto.FilterOperatorEq,
					Value:    username,
					Table:    userModel.TableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve token subject")
			scope.TraceError(err)
			response.WithError(writer, failure.InvalidCredentials)

			return
		}

		if user.ID == "" {
			scope.TraceError(failure.InvalidCredentials)
			response.WithError(writer, failure.InvalidCredentials)

			return
		}

		if !user.IsActive {
			scope.TraceError(failure.InactiveUser)
			response.WithError(writer, failure.InactiveUser)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, user.Username)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
