// Package intent classifies an incoming message into a control action using
// an ordered list of substring predicates. Order matters: tokens can
// co-occur, and the first matching rule wins.
package intent

import (
	"strings"

	"github.com/skydesk/skydesk/chatbot/session"
	"github.com/skydesk/skydesk/store"
)

// Action is the control action derived from a message.
type Action string

const (
	// ActionEndSession ends the conversation and deletes the session.
	ActionEndSession Action = "end_session"
	// ActionAcknowledge replies to a thank-you without changing state.
	ActionAcknowledge Action = "acknowledge"
	// ActionSelectAirport records the user's airport choice.
	ActionSelectAirport Action = "select_airport"
	// ActionPromptAirport asks the user to pick an airport.
	ActionPromptAirport Action = "prompt_airport"
	// ActionSelectCategory records the active lookup category.
	ActionSelectCategory Action = "select_category"
	// ActionContinueQuery routes the message to the active category resolver.
	ActionContinueQuery Action = "continue_query"
)

// Result is a classified action plus its parameter, when any.
type Result struct {
	Action   Action
	Airport  store.Airport
	Category store.Category
}

// Classify evaluates the rule sequence against the lowercased message and the
// current session. It is pure: state mutation is the dispatcher's job.
func Classify(message string, sess *session.Session) Result {
	switch {
	case strings.Contains(message, "bye"):
		return Result{Action: ActionEndSession}
	case strings.Contains(message, "thanks"), strings.Contains(message, "thank you"):
		return Result{Action: ActionAcknowledge}
	case mentionsNo(message):
		return Result{Action: ActionEndSession}
	case strings.Contains(message, "bangalore"):
		return Result{Action: ActionSelectAirport, Airport: store.AirportBangalore}
	case strings.Contains(message, "dubai"):
		return Result{Action: ActionSelectAirport, Airport: store.AirportDubai}
	case sess.Airport == "":
		return Result{Action: ActionPromptAirport}
	case strings.Contains(message, "transport"):
		return Result{Action: ActionSelectCategory, Category: store.CategoryTransport}
	case strings.Contains(message, "facilities"):
		return Result{Action: ActionSelectCategory, Category: store.CategoryFacilities}
	case strings.Contains(message, "visa"):
		return Result{Action: ActionSelectCategory, Category: store.CategoryVisa}
	case sess.Airport != "" && sess.Query != "":
		return Result{Action: ActionContinueQuery}
	default:
		return Result{Action: ActionPromptAirport}
	}
}

// mentionsNo treats any message containing "no" as a decline. This matches
// substrings of ordinary words too ("norway", "north"); kept for parity with
// the shipped behavior and isolated here so a fix touches one predicate.
// TODO: tighten to a word-boundary match once product confirms the intent.
func mentionsNo(message string) bool {
	return strings.Contains(message, "no")
}
