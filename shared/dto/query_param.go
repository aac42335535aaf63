package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"todoapp/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. With
// applyDefaults set, missing values fall back to page 1, the default limit
// and created_at ascending, which keeps list responses in insertion order.
func (q *QueryParams) FromRequest(r *http.Request, applyDefaults bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if applyDefaults {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}

		if q.SortBy == "" {
			q.SortBy = constant.DefaultValueSortBy
		}

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}

// SanitizeSort restricts SortBy to the given column set and SortDir to
// ASC/DESC, falling back to the defaults. Ordering values end up interpolated
// into the query text, so anything outside the known columns must never pass
// through.
func (q *QueryParams) SanitizeSort(allowedColumns []string) {
	if q.SortBy != "" && !slices.Contains(allowedColumns, q.SortBy) {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir != "" {
		if dir := strings.ToUpper(q.SortDir); dir == SortDirAsc || dir == SortDirDesc {
			q.SortDir = dir
		} else {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}
