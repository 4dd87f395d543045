package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"eventPortal/internal/intake"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// State of the submission workflow: Idle -> Submitting -> Submitted, back to
// Idle on reset or on a failed send.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrAlreadySubmitted   = errors.New("request already submitted")
	ErrNotSubmitted       = errors.New("no submitted request")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Send(ctx context.Context, request models.EventRequest) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventAppender
type EventAppender interface {
	AddEvent(event models.Event) int
}

// Workflow validates an intake form, sends the notification and records the
// resulting event. At most one submission is in flight at a time; a second
// submit while one is running is rejected, so a double-click appends exactly
// one event.
type Workflow struct {
	log      *slog.Logger
	notifier Notifier
	store    EventAppender
	validate *validator.Validate

	now   func() time.Time
	newID func() string

	mu    sync.Mutex
	state State
	last  *models.EventRequest
}

func New(log *slog.Logger, notifier Notifier, store EventAppender) *Workflow {
	return &Workflow{
		log:      log,
		notifier: notifier,
		store:    store,
		validate: intake.NewValidator(),
		now:      time.Now,
		newID:    uuid.NewString,
		state:    StateIdle,
	}
}

// Submit runs validate -> send -> append. Validation failures and in-flight
// rejections leave the state untouched; a send failure returns the workflow
// to Idle with the form preserved on the caller's side.
func (w *Workflow) Submit(ctx context.Context, form intake.Form) (*models.EventRequest, error) {
	const op = "intake.submission.Submit"

	log := w.log.With(slog.String("op", op))

	if err := w.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	w.mu.Lock()
	switch w.state {
	case StateSubmitting:
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	case StateSubmitted:
		w.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	w.state = StateSubmitting
	w.mu.Unlock()

	request := buildRequest(form, w.newID(), w.now())

	if err := w.notifier.Send(ctx, request); err != nil {
		w.setState(StateIdle)

		log.Error("failed to send request notification", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	eventID := w.store.AddEvent(eventFromForm(form))

	w.mu.Lock()
	w.state = StateSubmitted
	w.last = &request
	w.mu.Unlock()

	log.Info("event request submitted",
		slog.String("request_id", request.RequestID),
		slog.Int("event_id", eventID),
	)

	return &request, nil
}

// Reset returns a submitted workflow to Idle so another request can be
// raised. An in-flight submission cannot be aborted.
func (w *Workflow) Reset() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateSubmitting {
		return ErrSubmissionInFlight
	}

	w.state = StateIdle
	w.last = nil

	return nil
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Last returns the most recent confirmed submission.
func (w *Workflow) Last() (*models.EventRequest, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.last == nil {
		return nil, ErrNotSubmitted
	}

	request := *w.last

	return &request, nil
}

func (w *Workflow) setState(state State) {
	w.mu.Lock()
	w.state = state
	w.mu.Unlock()
}

func buildRequest(form intake.Form, requestID string, submittedAt time.Time) models.EventRequest {
	return models.EventRequest{
		Requester: models.Requester{
			Name:       form.RequesterName,
			Team:       form.RequesterTeam,
			Email:      form.RequesterEmail,
			EmployeeID: form.RequesterEmployeeID,
		},
		Event: models.RequestedEvent{
			Name:      form.EventName,
			Date:      form.EventDate,
			Time:      form.PreferredTime,
			Venue:     form.VenuePreferred,
			Budget:    form.TentativeBudget,
			HeadCount: form.HeadCount,
		},
		Description:      form.EventDescription,
		BusinessImpact:   form.BusinessImpact,
		EmployeeTakeaway: form.EmployeeTakeaway,
		Approval: models.Approval{
			Granted:      strings.EqualFold(form.LeaderApproval, "yes"),
			ApproverName: form.ApproverName,
		},
		SpecialArrangements: form.SpecialArrangements,
		RequestID:           requestID,
		SubmittedAt:         submittedAt,
	}
}

// eventFromForm derives the store entry for a confirmed request. A fresh
// request always starts in planning.
func eventFromForm(form intake.Form) models.Event {
	return models.Event{
		Title:       form.EventName,
		Date:        form.EventDate,
		Time:        form.PreferredTime,
		Location:    form.VenuePreferred,
		Attendees:   parseCount(form.HeadCount),
		Budget:      parseAmount(form.TentativeBudget),
		Status:      models.StatusPlanning,
		Planner:     form.RequesterName,
		Type:        "corporate",
		Description: form.EventDescription,
		Leader:      form.ApproverName,
	}
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// parseAmount reads a currency string as typed, e.g. "₹ 50,000" or "50000".
func parseAmount(s string) float64 {
	var b strings.Builder

	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}

	return amount
}
