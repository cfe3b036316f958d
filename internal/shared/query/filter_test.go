package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	assert.Equal(t, 0, PageFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageFilter{}.Limit())
	assert.Equal(t, 100, PageFilter{PageSize: 500}.Limit())
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{"created_at": "created_at", "number": "ticket_number"}

	assert.Equal(t, "ticket_number DESC", SortFilter{SortBy: "number", SortOrder: "DESC"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "created_at ASC", SortFilter{SortBy: "created_at"}.OrderClause(allowed, "id DESC"))
	assert.Equal(t, "id DESC", SortFilter{SortBy: "id; drop table"}.OrderClause(allowed, "id DESC"))
}
