package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/skydesk/skydesk/chatbot/match"
	"github.com/skydesk/skydesk/chatbot/respond"
	"github.com/skydesk/skydesk/store"
)

// placeholderStops are cell values that mean "no stop here" and must never
// appear in the dropdown options.
var placeholderStops = map[string]bool{
	"no stops": true,
	"none":     true,
	"na":       true,
	"n/a":      true,
}

// Transport answers a transport query through three tiers: the rail flow
// (stop dropdown or endpoint filter), a fuzzy match against the category
// names, and a full scan of every transport table.
func (r *Resolver) Transport(data *store.AirportData, airport store.Airport, message string) *respond.Response {
	if strings.Contains(message, "train") || strings.HasPrefix(message, "from:") {
		return r.rail(data, message)
	}

	if key, _, ok := match.BestKey(message, data.TransportNames); ok {
		table := data.Transport[key]
		if table.Empty() {
			return respond.Text(fmt.Sprintf("No %s data found for %s.", key, airport))
		}
		return respond.List(respond.ShapeRows(table.Rows))
	}

	if found := match.ScanTables(data.Transport, data.TransportNames, message); len(found) > 0 {
		return respond.List(respond.ShapeRows(found))
	}

	return respond.TextWithButtons(
		fmt.Sprintf("No matching transport data found for '%s' at %s Airport. Available transport options:", message, airport),
		data.TransportNames...,
	)
}

func (r *Resolver) rail(data *store.AirportData, message string) *respond.Response {
	railName, railTable := data.RailTable()

	if strings.HasPrefix(message, "from:") {
		if railTable == nil {
			return respond.Text("Train information is not available for this airport.")
		}
		return r.railRoute(railTable, message)
	}

	if railTable == nil {
		return respond.Text("No transport data found for 'train'.")
	}
	if railTable.Empty() {
		return respond.Text(fmt.Sprintf("No data available for %s.", railName))
	}

	stops := railStops(railTable)
	return respond.Dropdown("Please select a 'From' and 'To' location.", stops, stops)
}

// railRoute filters the rail table to rows whose departure contains the
// "from" endpoint and arrival contains the "to" endpoint.
func (r *Resolver) railRoute(table *store.Table, message string) *respond.Response {
	from, to, ok := parseEndpoints(message)
	if !ok {
		return respond.Text("Please select both a 'From' and a 'To' location.")
	}

	var matched []store.Row
	for _, row := range table.Rows {
		dep, depOK := row[table.Roles.Departure]
		arr, arrOK := row[table.Roles.Arrival]
		if depOK && arrOK && match.ContainsFold(dep.Text(), from) && match.ContainsFold(arr.Text(), to) {
			matched = append(matched, row)
		}
	}

	if len(matched) == 0 {
		return respond.Text(fmt.Sprintf("No trains found from %s to %s.", from, to))
	}
	return respond.List(respond.ShapeRows(matched))
}

// parseEndpoints splits a "from:X to:Y" selection message.
func parseEndpoints(message string) (from, to string, ok bool) {
	rest := strings.TrimPrefix(message, "from:")
	parts := strings.SplitN(rest, "to:", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	from = strings.TrimSpace(parts[0])
	to = strings.TrimSpace(parts[1])
	return from, to, from != "" && to != ""
}

// railStops derives the unique stop names from the departure, arrival and
// halt columns: comma-delimited cells are split, names trimmed and
// title-cased, placeholders dropped, the rest deduplicated and sorted.
func railStops(table *store.Table) []string {
	columns := []string{table.Roles.Departure, table.Roles.Arrival}
	if table.Roles.Halt != "" {
		columns = append(columns, table.Roles.Halt)
	}

	seen := make(map[string]bool)
	var stops []string
	for _, col := range columns {
		if col == "" {
			continue
		}
		for _, row := range table.Rows {
			v, ok := row[col]
			if !ok {
				continue
			}
			for _, part := range strings.Split(v.Text(), ",") {
				stop := titleCase(strings.TrimSpace(part))
				if stop == "" || placeholderStops[strings.ToLower(stop)] || seen[stop] {
					continue
				}
				seen[stop] = true
				stops = append(stops, stop)
			}
		}
	}

	sort.Strings(stops)
	return stops
}
