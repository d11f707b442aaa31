package database

import "github.com/jackc/pgx/v5/pgtype"

// cellsFromPG converts a scanned text[] into row cells; NULL cells (left by
// writes past the end of a row) read as "".
func cellsFromPG(cells []pgtype.Text) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if c.Valid {
			out[i] = c.String
		}
	}
	return out
}
