package respond

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skydesk/skydesk/store"
)

func TestShapeRowDropsAbsentAndFormatsTimes(t *testing.T) {
	row := store.Row{
		"Name":      store.StringValue("Airport Express"),
		"Departure": store.TimeValue(store.TimeOfDay{Hour: 6, Minute: 15}),
		"Fare":      store.NumberValue(120),
	}

	record := ShapeRow(row)
	assert.Equal(t, Record{
		"Name":      "Airport Express",
		"Departure": "06:15:00",
		"Fare":      float64(120),
	}, record)
	assert.NotContains(t, record, "Halt")
}

func TestMarshalText(t *testing.T) {
	data, err := json.Marshal(TextWithButtons("Please select an airport first:", "Bangalore", "Dubai"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"response": "Please select an airport first:",
		"type": "text",
		"buttons": ["Bangalore", "Dubai"]
	}`, string(data))
}

func TestMarshalList(t *testing.T) {
	resp := ListWithPrevious(
		[]Record{{"Name": "Spa"}},
		[]Record{{"Name": "Lounge"}},
	)
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"response": [{"Name": "Spa"}],
		"type": "list",
		"previous_replies": [{"Name": "Lounge"}]
	}`, string(data))
}

func TestMarshalDropdown(t *testing.T) {
	resp := Dropdown("Please select a 'From' and 'To' location.",
		[]string{"Bangalore City", "Whitefield"},
		[]string{"Bangalore City", "Whitefield"})
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"response": "Please select a 'From' and 'To' location.",
		"type": "dropdown",
		"from_options": ["Bangalore City", "Whitefield"],
		"to_options": ["Bangalore City", "Whitefield"]
	}`, string(data))
}
