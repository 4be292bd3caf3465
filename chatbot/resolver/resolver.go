// Package resolver holds the per-category lookup handlers. Each resolver
// consumes the active session state, the message and the relevant reference
// tables, and produces a response payload through a chain of matching tiers.
package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skydesk/skydesk/chatbot/countries"
)

// Resolver bundles the collaborators the category handlers share.
type Resolver struct {
	Countries *countries.Cache
}

// New creates a resolver using the given country cache.
func New(countryCache *countries.Cache) *Resolver {
	return &Resolver{Countries: countryCache}
}

// titleCase normalizes free text the way the reference tables spell names:
// each word capitalized, the rest lowered. Casers are not safe for concurrent
// use, so one is created per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
