package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydesk/skydesk/chatbot/respond"
	"github.com/skydesk/skydesk/store"
)

func trainTable() *store.Table {
	t := &store.Table{
		Columns: []string{"Train", "Departure", "Arrival", "Halt", "Departure Time"},
		Rows: []store.Row{
			{
				"Train":          store.StringValue("Airport Express"),
				"Departure":      store.StringValue("Paris Central"),
				"Arrival":        store.StringValue("Lyon Part-Dieu"),
				"Halt":           store.StringValue("Dijon, Macon"),
				"Departure Time": store.TimeValue(store.TimeOfDay{Hour: 6, Minute: 15}),
			},
			{
				"Train":     store.StringValue("Night Mail"),
				"Departure": store.StringValue("Marseille"),
				"Arrival":   store.StringValue("Paris Central"),
				"Halt":      store.StringValue("no stops"),
			},
		},
	}
	t.Roles = store.ResolveColumnRoles(t.Columns)
	return t
}

func transportData() *store.AirportData {
	return &store.AirportData{
		Transport: map[string]*store.Table{
			"bus": {
				Columns: []string{"Route", "Fare"},
				Rows: []store.Row{
					{"Route": store.StringValue("Majestic Shuttle"), "Fare": store.NumberValue(250)},
				},
			},
			"taxis": {
				Columns: []string{"Operator"},
				Rows: []store.Row{
					{"Operator": store.StringValue("Express Cabs")},
				},
			},
			"train": trainTable(),
		},
		TransportNames: []string{"bus", "taxis", "train"},
	}
}

func TestTransportTrainDropdown(t *testing.T) {
	r := New(nil)
	resp := r.Transport(transportData(), store.AirportBangalore, "train timings please")

	require.Equal(t, respond.KindDropdown, resp.Kind)
	want := []string{"Dijon", "Lyon Part-Dieu", "Macon", "Marseille", "Paris Central"}
	assert.Equal(t, want, resp.FromOptions, "sorted, deduplicated, placeholders excluded")
	assert.Equal(t, resp.FromOptions, resp.ToOptions, "from and to sets must be identical")
}

func TestTransportTrainRoute(t *testing.T) {
	r := New(nil)

	resp := r.Transport(transportData(), store.AirportBangalore, "from: paris to: lyon")
	require.Equal(t, respond.KindList, resp.Kind)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Airport Express", resp.Records[0]["Train"])
	assert.Equal(t, "06:15:00", resp.Records[0]["Departure Time"])

	resp = r.Transport(transportData(), store.AirportBangalore, "from: oslo to: bergen")
	require.Equal(t, respond.KindText, resp.Kind)
	assert.Equal(t, "No trains found from oslo to bergen.", resp.Message)
}

func TestTransportTrainRouteWithoutTrainTable(t *testing.T) {
	r := New(nil)
	data := &store.AirportData{
		Transport:      map[string]*store.Table{"metro": {}},
		TransportNames: []string{"metro"},
	}

	resp := r.Transport(data, store.AirportDubai, "from: a to: b")
	require.Equal(t, respond.KindText, resp.Kind)
	assert.Contains(t, resp.Message, "not available")
}

func TestTransportFuzzyCategory(t *testing.T) {
	r := New(nil)

	resp := r.Transport(transportData(), store.AirportBangalore, "taxi")
	require.Equal(t, respond.KindList, resp.Kind)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Express Cabs", resp.Records[0]["Operator"])
}

func TestTransportScanFallback(t *testing.T) {
	r := New(nil)

	// "majestic" matches no category name but appears inside the bus table.
	resp := r.Transport(transportData(), store.AirportBangalore, "majestic")
	require.Equal(t, respond.KindList, resp.Kind)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "Majestic Shuttle", resp.Records[0]["Route"])
}

func TestTransportNothingFoundOffersOptions(t *testing.T) {
	r := New(nil)

	resp := r.Transport(transportData(), store.AirportBangalore, "zeppelin rides")
	require.Equal(t, respond.KindText, resp.Kind)
	assert.Equal(t, []string{"bus", "taxis", "train"}, resp.Buttons)
	assert.Contains(t, resp.Message, "zeppelin rides")
}
