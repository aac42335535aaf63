package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"todoapp/config"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/model"
	"todoapp/internal/domains/todo/model/dto"
	"todoapp/internal/domains/todo/repository"
	"todoapp/shared"
	"todoapp/shared/cache"
	"todoapp/shared/constant"
	gDto "todoapp/shared/dto"
	"todoapp/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgTodoNotFound = "Todo not found"

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	todoRepo repository.Todo
	cfg      *config.Config
	otel     otel.Otel
	cache    cache.RedisCache
}

func New(todoRepo repository.Todo, cfg *config.Config, otel otel.Otel, cache cache.RedisCache) Todo {
	return &serviceImpl{
		todoRepo: todoRepo,
		cfg:      cfg,
		otel:     otel,
		cache:    cache,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerID, actor := ownerFromContext(ctx)

	todo := req.ToModel(ownerID, actor)

	if err = s.todoRepo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, todoCachePrefix(ownerID))

	res.FromModel(todo)

	return res, nil
}

// GetAll lists the caller's todos. The listing is cached per owner and per
// query shape; any write by the owner clears the whole prefix.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerID, _ := ownerFromContext(ctx)

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Value:    ownerID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	cacheKey := shared.BuildCacheKey(
		todoCachePrefix(ownerID),
		"list",
		fmt.Sprintf("%+v", params),
		fmt.Sprintf("%+v", filter),
	)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	} else if !errors.Is(cacheErr, cache.Nil) {
		log.Warn().Err(cacheErr).Msg("failed to read todos from cache")
	}

	todos, err := s.todoRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	total, err := s.todoRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	res.FromModels(todos, shared.CalculateTotalPage(total, params.Limit), total)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to save todos to cache")
	}

	return res, nil
}

// Get returns one of the caller's todos. A todo owned by someone else is
// indistinguishable from one that does not exist.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerID, _ := ownerFromContext(ctx)

	todo, err := s.todoRepo.Get(ctx, shared.FilterByOwner(id, ownerID, model.FieldID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound(msgTodoNotFound) //nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerID, actor := ownerFromContext(ctx)
	ownerFilter := shared.FilterByOwner(id, ownerID, model.FieldID, model.FieldUserID, model.TableName)

	exist, err := s.todoRepo.Exist(ctx, ownerFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return res, fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgTodoNotFound) //nolint:wrapcheck
	}

	if !req.IsEmpty() {
		fields := shared.TransformFields(req, actor)

		if err = s.todoRepo.Update(ctx, fields, ownerFilter); err != nil {
			log.Error().Err(err).Msg("failed to update todo")

			return res, fmt.Errorf("failed to update todo: %w", err)
		}

		go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, todoCachePrefix(ownerID))
	}

	todo, err := s.todoRepo.Get(ctx, ownerFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated todo")

		return res, fmt.Errorf("failed to get updated todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	ownerID, _ := ownerFromContext(ctx)
	ownerFilter := shared.FilterByOwner(id, ownerID, model.FieldID, model.FieldUserID, model.TableName)

	exist, err := s.todoRepo.Exist(ctx, ownerFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgTodoNotFound) //nolint:wrapcheck
	}

	if err = s.todoRepo.Delete(ctx, ownerFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, todoCachePrefix(ownerID))

	return nil
}

func ownerFromContext(ctx context.Context) (ownerID, username string) {
	if id, ok := ctx.Value(constant.ContextKeyUserID).(string); ok {
		ownerID = id
	}

	if name, ok := ctx.Value(constant.ContextKeyUsername).(string); ok {
		username = name
	}

	return ownerID, username
}

func todoCachePrefix(ownerID string) string {
	return shared.BuildCacheKey(model.EntityName, ownerID)
}
