package postgres

import (
	"fmt"

	"github.com/vncsmyrnk/rentas/internal/core/domain"
)

// orderBy renders an ORDER BY clause from a whitelist of sortable fields.
// Unknown fields fall back to id so user input never reaches the SQL text.
func orderBy(page domain.PageRequest, columns map[string]string) string {
	column, ok := columns[page.SortBy]
	if !ok {
		column = "id"
	}
	dir := "ASC"
	if page.SortDir == domain.SortDesc {
		dir = "DESC"
	}
	if column == "id" {
		return fmt.Sprintf(" ORDER BY id %s", dir)
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", column, dir, dir)
}

// where accumulates filter predicates with positional placeholders.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	s := " WHERE " + w.clauses[0]
	for _, c := range w.clauses[1:] {
		s += " AND " + c
	}
	return s
}

func (w *where) limit(page domain.PageRequest) (string, []any) {
	args := append(append([]any{}, w.args...), page.Size, page.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)+1, len(w.args)+2), args
}
