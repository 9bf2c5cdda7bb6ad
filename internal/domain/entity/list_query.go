package entity

// Direction of an ORDER BY clause
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ListQuery is a domain-level description of a list fetch: which relations to embed
// and how to order the base rows. Used by the repository layer to avoid coupling with
// delivery DTOs.
type ListQuery struct {
	Embeds      []string // relation names declared in the schema, e.g. "patients", "cases.patients"
	OrderColumn string   // must be a column of the base table
	Direction   Direction
}

// WithOrder returns a copy of q ordered by column/direction. Empty arguments keep
// the current value.
func (q ListQuery) WithOrder(column string, direction Direction) ListQuery {
	if column != "" {
		q.OrderColumn = column
	}
	if direction != "" {
		q.Direction = direction
	}
	return q
}
