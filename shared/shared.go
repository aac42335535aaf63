package shared

import (
	"context"
	"math"
	"reflect"
	"strconv"
	"strings"
	"todoapp/shared/cache"
	"todoapp/shared/constant"
	"todoapp/shared/dto"
	"todoapp/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts a patch struct into a map of columns to update.
// Fields are expected to be pointers: a nil pointer means "not provided" and
// is skipped, while a non-nil pointer is applied even when it points at the
// zero value, so {"completed": false} is an effective update. Audit columns
// are always refreshed.
func TransformFields(data interface{}, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)

		column := typ.Field(index).Tag.Get("db")
		if column == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			updatedFields[column] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		updatedFields[column] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByOwner scopes a lookup to both the row id and the owning user.
// A row belonging to someone else falls outside the filter and reads as
// absent, which is exactly the signal callers are allowed to see.
func FilterByOwner(id, ownerID, fieldID, fieldOwner, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				Field:    fieldOwner,
				Value:    ownerID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
