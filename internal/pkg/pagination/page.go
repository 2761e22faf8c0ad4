package pagination

// Paginate trims a fetched batch to one page and derives the continuation
// token. rows must have been fetched in ascending key order with limit+1
// requested: the extra row, when present, proves more data exists and is
// dropped. The next cursor encodes the key of the last row actually kept,
// so repeated paging never repeats or skips a row as long as already-read
// keys are not deleted underneath the caller.
func Paginate[T any](rows []T, limit int, key func(T) int64) ([]T, *string) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	token := Encode(key(rows[len(rows)-1]))
	return rows, &token
}

// ClampLimit validates a requested page size against the configured bounds.
// A zero limit selects def; anything outside [1, max] is a caller error.
func ClampLimit(limit, def, max int) (int, bool) {
	if limit == 0 {
		return def, true
	}
	if limit < 1 || limit > max {
		return 0, false
	}
	return limit, true
}
