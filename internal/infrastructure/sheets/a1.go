package sheets

import (
	"fmt"
	"net/url"
	"strings"
)

// columnName converts a 0-based column index to A1 letters (0 -> A, 26 -> AA).
func columnName(index int) string {
	name := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}
	return name
}

// cellRef is the A1 reference of a 0-based row/column.
func cellRef(rowIndex, fieldIndex int) string {
	return fmt.Sprintf("%s%d", columnName(fieldIndex), rowIndex+1)
}

// sheetRange quotes the sheet name and appends ref when given.
func sheetRange(sheet, ref string) string {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if ref == "" {
		return quoted
	}
	return quoted + "!" + ref
}

func fromValues(values [][]any) [][]string {
	rows := make([][]string, len(values))
	for i, v := range values {
		row := make([]string, len(v))
		for j, cell := range v {
			if cell != nil {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = row
	}
	return rows
}

// toValues converts rows, padding each with "" up to width so that a rewrite
// also blanks stale cells on the right.
func toValues(rows [][]string, width int) [][]any {
	values := make([][]any, len(rows))
	for i, row := range rows {
		n := max(len(row), width)
		v := make([]any, n)
		for j := range n {
			if j < len(row) {
				v[j] = row[j]
			} else {
				v[j] = ""
			}
		}
		values[i] = v
	}
	return values
}

// SpreadsheetIDFromURL extracts the id from a spreadsheet URL of the form
// https://docs.google.com/spreadsheets/d/<id>/edit.
func SpreadsheetIDFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("sheets: invalid url %q: %w", raw, err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "d" && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("sheets: no spreadsheet id in %q", raw)
}
