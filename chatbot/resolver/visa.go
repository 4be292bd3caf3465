package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/skydesk/skydesk/chatbot/countries"
	"github.com/skydesk/skydesk/chatbot/match"
	"github.com/skydesk/skydesk/chatbot/respond"
	"github.com/skydesk/skydesk/store"
)

// Visa validates the entered country against the directory before any table
// lookup, then checks the airport's visa-on-arrival table and, for Dubai, the
// GCC exemption table. Country matching uses the table's second column.
func (r *Resolver) Visa(ctx context.Context, data *store.AirportData, airport store.Airport, message string) *respond.Response {
	valid := r.Countries.GetOrFetch(ctx)
	if len(valid) == 0 {
		return respond.Text("Unable to validate country names at the moment. Please try again later.")
	}

	country := titleCase(strings.TrimSpace(message))
	if !countries.Contains(valid, country) {
		return respond.Text(fmt.Sprintf("'%s' is not recognized as a valid country. Please enter a valid country name.", message))
	}

	granted, err := secondColumnContains(data.Visa, country)
	if err != nil {
		return respond.Text("Visa data is not properly formatted.")
	}
	if granted {
		return respond.Text("Hooray! Your passport is granted visa on arrival.")
	}

	if airport == store.AirportDubai {
		exempt, err := secondColumnContains(data.GCC, country)
		if err == nil && exempt {
			return respond.Text("As your country belongs to the GCC, you do not require a visa to enter.")
		}
	}

	return respond.Text("Unfortunately, your country does not have visa on arrival at this airport.")
}

func secondColumnContains(table *store.Table, country string) (bool, error) {
	if table == nil || len(table.Columns) < 2 {
		return false, fmt.Errorf("table missing country column")
	}
	col := table.Columns[1]
	for _, row := range table.Rows {
		if v, ok := row[col]; ok && match.ContainsFold(v.Text(), country) {
			return true, nil
		}
	}
	return false, nil
}
