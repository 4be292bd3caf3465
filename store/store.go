// Package store holds the immutable airport reference tables the chatbot
// answers from. Tables are loaded once at startup and never mutated, so reads
// need no locking.
package store

import "strings"

// Airport identifies one of the supported airports.
type Airport string

const (
	AirportBangalore Airport = "Bangalore"
	AirportDubai     Airport = "Dubai"
)

// Category is an active lookup domain within an airport.
type Category string

const (
	CategoryTransport  Category = "transport"
	CategoryFacilities Category = "facilities"
	CategoryVisa       Category = "visa"
)

// AirportData groups every reference table for a single airport.
type AirportData struct {
	Facilities *Table
	// Transport maps category names ("bus", "train", ...) to their tables.
	// TransportNames preserves workbook order for button lists.
	Transport      map[string]*Table
	TransportNames []string
	Visa           *Table
	// GCC is only populated for Dubai.
	GCC *Table
}

// RailTable returns the first transport category whose name mentions
// "train", along with its name. Returns an empty name when the airport has
// no train category; other rail systems (the Dubai metro) resolve through
// the regular category matching tiers.
func (d *AirportData) RailTable() (string, *Table) {
	for _, name := range d.TransportNames {
		if strings.Contains(strings.ToLower(name), "train") {
			return name, d.Transport[name]
		}
	}
	return "", nil
}

// Store is the read-only nested mapping of airport reference data.
type Store struct {
	airports map[Airport]*AirportData
}

// New builds a store from pre-parsed airport data. Used directly by tests;
// production code goes through LoadWorkbook.
func New(airports map[Airport]*AirportData) *Store {
	return &Store{airports: airports}
}

// Airport returns the data for the given airport, or nil when unknown.
func (s *Store) Airport(a Airport) *AirportData {
	return s.airports[a]
}
