package utils

import (
	"net/url"
	"strconv"

	"hr-reports/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// ParseFilterFromQuery extracts search/pagination parameters from a query
// string. Values outside the allowed range fall back to the defaults.
func ParseFilterFromQuery(query url.Values) types.Filter {
	filter := types.Filter{
		Limit:          defaultLimit,
		Page:           1,
		WithPagination: true,
	}

	if search := query.Get("search"); search != "" {
		filter.Search = search
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= maxLimit {
			filter.Limit = l
		}
	}

	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filter.Page = p
		}
	}
	filter.Offset = (filter.Page - 1) * filter.Limit

	if query.Get("all") == "true" {
		filter.WithPagination = false
	}

	return filter
}
