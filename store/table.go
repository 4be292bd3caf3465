package store

import "strings"

// Row maps column names to typed cell values. Absent cells have no entry.
type Row map[string]Value

// ColumnRoles names the columns a transport table uses for route endpoints
// and intermediate stops. Empty fields mean the role could not be resolved.
type ColumnRoles struct {
	Departure string
	Arrival   string
	Halt      string
}

// Table is one reference sheet: an ordered header, ordered rows, and (for
// transport tables) the resolved column roles.
type Table struct {
	Columns []string
	Rows    []Row
	Roles   ColumnRoles
}

// Empty reports whether the table is nil or has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// HasColumns reports whether every named column is present in the header.
func (t *Table) HasColumns(names ...string) bool {
	if t == nil {
		return false
	}
	for _, name := range names {
		found := false
		for _, col := range t.Columns {
			if col == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ResolveColumnRoles maps headers to route roles once at load time. Exact
// "Departure"/"Arrival"/"Halt" headers win; otherwise the first header whose
// name mentions a role fragment is taken; a table with unrecognizable headers
// falls back to treating the first two columns as departure and arrival.
func ResolveColumnRoles(columns []string) ColumnRoles {
	var roles ColumnRoles

	for _, col := range columns {
		switch col {
		case "Departure":
			roles.Departure = col
		case "Arrival":
			roles.Arrival = col
		case "Halt":
			roles.Halt = col
		}
	}

	for _, col := range columns {
		lower := strings.ToLower(col)
		switch {
		case roles.Departure == "" && strings.Contains(lower, "depart"):
			roles.Departure = col
		case roles.Arrival == "" && (strings.Contains(lower, "arriv") || strings.Contains(lower, "dest")):
			roles.Arrival = col
		case roles.Halt == "" && (strings.Contains(lower, "halt") || strings.Contains(lower, "stop")):
			roles.Halt = col
		}
	}

	if roles.Departure == "" && len(columns) > 0 {
		roles.Departure = columns[0]
	}
	if roles.Arrival == "" && len(columns) > 1 {
		roles.Arrival = columns[1]
	}

	return roles
}
