// Package query holds pagination and ordering shared by repository filters.
package query

import (
	"strings"

	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/constants"
)

type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return strings.EqualFold(f.SortOrder, "desc")
}

// OrderClause resolves SortBy against allowed (API name to column). Unknown
// names fall back to fallback so user input never reaches the SQL text.
func (f SortFilter) OrderClause(allowed map[string]string, fallback string) string {
	column, ok := allowed[f.SortBy]
	if !ok {
		return fallback
	}
	if f.IsDescending() {
		return column + " DESC"
	}
	return column + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}
