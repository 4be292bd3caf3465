// Package chatbot orchestrates a single message through the session store,
// the intent classifier, the category resolvers and the response shaper.
package chatbot

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/skydesk/skydesk/chatbot/countries"
	"github.com/skydesk/skydesk/chatbot/intent"
	"github.com/skydesk/skydesk/chatbot/resolver"
	"github.com/skydesk/skydesk/chatbot/respond"
	"github.com/skydesk/skydesk/chatbot/session"
	"github.com/skydesk/skydesk/internal/observability"
	"github.com/skydesk/skydesk/store"
)

// Dispatcher is the only public entry point into the chatbot core.
type Dispatcher struct {
	sessions *session.Store
	refdata  *store.Store
	resolver *resolver.Resolver
	timeout  time.Duration
	logger   *slog.Logger
}

// NewDispatcher wires the dispatcher from its owned collaborators. A
// non-positive timeout falls back to the default session timeout.
func NewDispatcher(sessions *session.Store, refdata *store.Store, countryCache *countries.Cache, timeout time.Duration, logger *slog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = session.DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sessions: sessions,
		refdata:  refdata,
		resolver: resolver.New(countryCache),
		timeout:  timeout,
		logger:   logger,
	}
}

// Handle processes one inbound message and always produces a payload: any
// internal fault is converted into an apologetic text reply with continuation
// buttons, never surfaced as a transport-level failure.
func (d *Dispatcher) Handle(ctx context.Context, userID, message string) (resp *respond.Response) {
	reqCtx := observability.NewRequestContext(d.logger, userID)

	defer func() {
		if r := recover(); r != nil {
			reqCtx.With("panic", fmt.Sprint(r), "stack", string(debug.Stack())).
				Error("recovered from dispatch fault")
			resp = respond.TextWithButtons(
				"An error occurred while processing your request. Would you like assistance with something else?",
				"Yes", "No",
			)
		}
		reqCtx.With(observability.LogFieldDuration, reqCtx.DurationMs()).Debug("message dispatched")
	}()

	d.sessions.SweepExpired(time.Now(), d.timeout)

	message = strings.ToLower(strings.TrimSpace(message))
	sess := d.sessions.GetOrCreate(userID)
	d.sessions.Touch(sess)

	result := intent.Classify(message, sess)
	reqCtx.With(
		"action", string(result.Action),
		observability.LogFieldAirport, string(sess.Airport),
		observability.LogFieldCategory, string(sess.Query),
	).Debug("message classified")

	switch result.Action {
	case intent.ActionEndSession:
		d.sessions.Delete(userID)
		return respond.Text("Goodbye! Have a great day!")

	case intent.ActionAcknowledge:
		return respond.Text("You're welcome! Would you like any more assistance?")

	case intent.ActionSelectAirport:
		sess.Airport = result.Airport
		return respond.TextWithButtons(
			fmt.Sprintf("You selected %s Airport. Choose an option:", result.Airport),
			"Transport", "Facilities", "Visa",
		)

	case intent.ActionPromptAirport:
		if sess.Airport == "" {
			return respond.TextWithButtons("Please select an airport first:", "Bangalore", "Dubai")
		}
		return respond.TextWithButtons(
			"Which airport do you need assistance with? Bangalore or Dubai?",
			"Bangalore", "Dubai",
		)

	case intent.ActionSelectCategory:
		sess.Query = result.Category
		return d.categoryPrompt(sess)

	case intent.ActionContinueQuery:
		return d.resolve(ctx, sess, message)

	default:
		return respond.TextWithButtons(
			"Which airport do you need assistance with? Bangalore or Dubai?",
			"Bangalore", "Dubai",
		)
	}
}

// categoryPrompt is the reply sent right after a category is selected.
func (d *Dispatcher) categoryPrompt(sess *session.Session) *respond.Response {
	switch sess.Query {
	case store.CategoryTransport:
		data := d.refdata.Airport(sess.Airport)
		return respond.TextWithButtons(
			fmt.Sprintf("What transportation option are you looking for at %s Airport?", sess.Airport),
			data.TransportNames...,
		)
	case store.CategoryFacilities:
		return respond.Text("What facilities are you looking for? (e.g., lounge, spa, shops, restaurants)")
	default:
		return respond.Text("Please enter your country name.")
	}
}

// resolve routes a continued query to the active category resolver.
func (d *Dispatcher) resolve(ctx context.Context, sess *session.Session, message string) *respond.Response {
	data := d.refdata.Airport(sess.Airport)
	switch sess.Query {
	case store.CategoryTransport:
		return d.resolver.Transport(data, sess.Airport, message)
	case store.CategoryFacilities:
		return d.resolver.Facilities(data, sess.Airport, message, sess)
	case store.CategoryVisa:
		return d.resolver.Visa(ctx, data, sess.Airport, message)
	default:
		return respond.TextWithButtons(
			"Which airport do you need assistance with? Bangalore or Dubai?",
			"Bangalore", "Dubai",
		)
	}
}
