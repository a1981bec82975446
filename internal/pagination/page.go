package pagination

// Limit clamps a requested page size into [1, max], substituting def for non-positive values.
func Limit(requested, def, max int) int {
	if requested <= 0 {
		requested = def
	}
	if max > 0 && requested > max {
		requested = max
	}
	if requested <= 0 {
		requested = 1
	}
	return requested
}

// Window is the row count to fetch for a page of limit items.
// The extra row only signals that another page exists.
func Window(limit int) int {
	return limit + 1
}

// Trim cuts rows fetched with Window(limit) down to a page and derives the next cursor
// from the last kept row.
func Trim[T any](rows []T, limit int, cursorOf func(T) Cursor) ([]T, *string, bool) {
	if len(rows) <= limit {
		return rows, nil, false
	}
	rows = rows[:limit]
	next := Encode(cursorOf(rows[len(rows)-1]))
	return rows, &next, true
}
