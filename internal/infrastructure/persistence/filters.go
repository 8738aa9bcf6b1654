package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/shared"
)

// applySearch adds an ILIKE filter over the given columns when the
// filter carries a search term
func applySearch(query *gorm.DB, filter shared.Filter, columns ...string) *gorm.DB {
	if filter.Search == "" || len(columns) == 0 {
		return query
	}

	pattern := "%" + filter.Search + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		clauses[i] = col + " LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}

// applyOrdering adds an ORDER BY clause, accepting only column names
// from the allowed set to keep user input out of raw SQL
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed map[string]bool, fallback string) *gorm.DB {
	column := filter.OrderBy
	if column == "" || !allowed[column] {
		column = fallback
	}

	direction := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		direction = "ASC"
	}
	return query.Order(column + " " + direction)
}

// applyPagination adds OFFSET/LIMIT for the filter's page window
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}
