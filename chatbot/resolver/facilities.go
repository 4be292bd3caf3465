package resolver

import (
	"fmt"
	"strings"

	"github.com/skydesk/skydesk/chatbot/match"
	"github.com/skydesk/skydesk/chatbot/respond"
	"github.com/skydesk/skydesk/chatbot/session"
	"github.com/skydesk/skydesk/store"
)

// facilityTextColumns are the columns synthesized into the per-row text the
// relevance ranking works on.
var facilityTextColumns = []string{"Type", "Name", "Description"}

// Facilities ranks the facility rows against the query with TF-IDF cosine
// similarity, falling back to Type keyword filtering when there is no lexical
// overlap. Matched records accumulate on the session as prior replies; the
// accumulation is intentional and never deduplicated.
func (r *Resolver) Facilities(data *store.AirportData, airport store.Airport, message string, sess *session.Session) *respond.Response {
	table := data.Facilities
	if !table.HasColumns(facilityTextColumns...) {
		return respond.Text("Facilities data is not properly formatted.")
	}

	docs := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		var parts []string
		for _, col := range facilityTextColumns {
			if v, ok := row[col]; ok {
				parts = append(parts, v.Text())
			}
		}
		docs[i] = strings.Join(parts, " ")
	}

	vectorizer := match.NewVectorizer(docs)
	ranked := vectorizer.Rank(message, match.TopN)

	var rows []store.Row
	if len(ranked) == 0 || ranked[0].Score == 0 {
		rows = typeFallback(table, message)
	} else {
		for _, r := range ranked {
			rows = append(rows, table.Rows[r.Index])
		}
	}

	if len(rows) == 0 {
		return respond.Text(fmt.Sprintf("No facilities found matching '%s' at %s Airport.", message, airport))
	}

	records := respond.ShapeRows(rows)
	sess.PriorReplies = append(sess.PriorReplies, records...)
	return respond.ListWithPrevious(records, sess.PriorReplies)
}

// typeFallback filters on the Type column for the special-cased keywords and
// returns the first TopN rows of the filtered set.
func typeFallback(table *store.Table, message string) []store.Row {
	rows := table.Rows
	for _, keyword := range []string{"lounge", "restaurant"} {
		if !strings.Contains(message, keyword) {
			continue
		}
		var filtered []store.Row
		for _, row := range rows {
			if v, ok := row["Type"]; ok && match.ContainsFold(v.Text(), keyword) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
		break
	}

	if len(rows) > match.TopN {
		rows = rows[:match.TopN]
	}
	return rows
}
