package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"todoapp/config"
	"todoapp/infras/jwt"
	"todoapp/infras/otel"
	"todoapp/internal/domains/auth/model/dto"
	userModel "todoapp/internal/domains/user/model"
	userDto "todoapp/internal/domains/user/model/dto"
	userRepo "todoapp/internal/domains/user/repository"
	"todoapp/shared/constant"
	gDto "todoapp/shared/dto"
	"todoapp/shared/failure"
	"todoapp/shared/password"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgUsernameTaken      = "Username already registered"
	msgEmailTaken         = "Email already registered"
	msgInvalidCredentials = "Incorrect username or password"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Register creates a new active account. Username is checked before email;
// each duplicate reports only its own field, as a 400 with message text the
// only distinction. The storage-level unique constraints close the race
// between the check and the insert, so a concurrent duplicate surfaces the
// same way, never as an internal error.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.userRepo.Exist(ctx, filterByField(userModel.FieldUsername, req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if username exists")

		return res, fmt.Errorf("failed to check if username exists: %w", err)
	}

	if taken {
		return res, failure.BadRequestFromString(msgUsernameTaken) //nolint:wrapcheck
	}

	taken, err = s.userRepo.Exist(ctx, filterByField(userModel.FieldEmail, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email exists")

		return res, fmt.Errorf("failed to check if email exists: %w", err)
	}

	if taken {
		return res, failure.BadRequestFromString(msgEmailTaken) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if duplicate := duplicateFromUniqueViolation(err); duplicate != nil {
			return res, duplicate
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

// Login verifies credentials and issues a bearer token for the username.
// Unknown username and wrong password produce the same outcome so the
// endpoint cannot be used as an account-existence oracle.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Get(ctx, filterByField(userModel.FieldUsername, req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized(msgInvalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.PasswordHash); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials) //nolint:wrapcheck
	}

	accessToken, err := s.jwtService.Issue(user.Username, s.jwtService.DefaultTTL())
	if err != nil {
		log.Error().Err(err).Msg("failed to issue token")

		return res, fmt.Errorf("failed to issue token: %w", err)
	}

	res.AccessToken = accessToken
	res.TokenType = "bearer"

	return res, nil
}

func filterByField(field, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    userModel.TableName,
			},
		},
	}
}

func duplicateFromUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != constant.PqErrorCodeUniqueViolation {
		return nil
	}

	if strings.Contains(pqErr.Constraint, userModel.FieldEmail) {
		return failure.BadRequestFromString(msgEmailTaken) //nolint:wrapcheck
	}

	return failure.BadRequestFromString(msgUsernameTaken) //nolint:wrapcheck
}
