// Package respond defines the fixed set of reply payloads the chatbot can
// produce and the shaping rules that turn table rows into wire records.
package respond

import (
	"encoding/json"

	"github.com/skydesk/skydesk/store"
)

// PayloadKind is the wire "type" of a response.
type PayloadKind string

const (
	KindText     PayloadKind = "text"
	KindList     PayloadKind = "list"
	KindDropdown PayloadKind = "dropdown"
)

// Record is a single shaped table row. Absent fields are never present and
// time-of-day values are already HH:MM:SS strings.
type Record map[string]any

// Response is the tagged variant returned by every resolver. Exactly one of
// Message or Records carries the "response" field depending on Kind.
type Response struct {
	Kind            PayloadKind
	Message         string
	Records         []Record
	Buttons         []string
	FromOptions     []string
	ToOptions       []string
	PreviousReplies []Record
}

// Text builds a plain text reply.
func Text(message string) *Response {
	return &Response{Kind: KindText, Message: message}
}

// TextWithButtons builds a text reply offering button options.
func TextWithButtons(message string, buttons ...string) *Response {
	return &Response{Kind: KindText, Message: message, Buttons: buttons}
}

// List builds a record-list reply.
func List(records []Record) *Response {
	return &Response{Kind: KindList, Records: records}
}

// ListWithPrevious builds a record-list reply that also surfaces the
// session's accumulated prior replies.
func ListWithPrevious(records, previous []Record) *Response {
	return &Response{Kind: KindList, Records: records, PreviousReplies: previous}
}

// Dropdown builds a from/to selection reply.
func Dropdown(message string, from, to []string) *Response {
	return &Response{Kind: KindDropdown, Message: message, FromOptions: from, ToOptions: to}
}

// ShapeRow converts a table row into a wire record, dropping absent fields.
func ShapeRow(row store.Row) Record {
	record := make(Record, len(row))
	for col, v := range row {
		record[col] = v.JSONValue()
	}
	return record
}

// ShapeRows converts rows in order.
func ShapeRows(rows []store.Row) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, ShapeRow(row))
	}
	return records
}

// MarshalJSON renders the external wire shape: "response" is either the text
// message or the record list, with the remaining fields omitted when empty.
func (r *Response) MarshalJSON() ([]byte, error) {
	var payload any = r.Message
	if r.Kind == KindList {
		payload = r.Records
	}
	return json.Marshal(struct {
		Response        any      `json:"response"`
		Type            string   `json:"type"`
		Buttons         []string `json:"buttons,omitempty"`
		FromOptions     []string `json:"from_options,omitempty"`
		ToOptions       []string `json:"to_options,omitempty"`
		PreviousReplies []Record `json:"previous_replies,omitempty"`
	}{
		Response:        payload,
		Type:            string(r.Kind),
		Buttons:         r.Buttons,
		FromOptions:     r.FromOptions,
		ToOptions:       r.ToOptions,
		PreviousReplies: r.PreviousReplies,
	})
}
