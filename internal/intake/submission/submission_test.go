package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventPortal/internal/intake"
	"eventPortal/internal/intake/submission/mocks"
	"eventPortal/internal/lib/logger/handlers/slogdiscard"
	"eventPortal/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func validForm() intake.Form {
	return intake.Form{
		RequesterName:       "Jane Doe",
		RequesterTeam:       "Platform Engineering",
		RequesterEmail:      "jane@x.com",
		RequesterEmployeeID: "E12345",
		EventName:           "Town Hall",
		EventDate:           "2025-03-01",
		PreferredTime:       "10:00 AM - 2:00 PM",
		EventDescription:    "Quarterly all hands",
		BusinessImpact:      "Alignment across teams",
		EmployeeTakeaway:    "Roadmap visibility",
		TentativeBudget:     "50000",
		VenuePreferred:      "Auditorium A",
		LeaderApproval:      "yes",
		ApproverName:        "Sam Lee",
	}
}

func newTestWorkflow(notifier Notifier, store EventAppender) *Workflow {
	w := New(slogdiscard.NewDiscardLogger(), notifier, store)
	w.now = func() time.Time { return testTime }
	w.newID = func() string { return "req-123" }

	return w
}

func TestSubmitHappyPath(t *testing.T) {
	t.Parallel()

	expectedEvent := models.Event{
		Title:       "Town Hall",
		Date:        "2025-03-01",
		Time:        "10:00 AM - 2:00 PM",
		Location:    "Auditorium A",
		Attendees:   0,
		Budget:      50000,
		Status:      models.StatusPlanning,
		Planner:     "Jane Doe",
		Type:        "corporate",
		Description: "Quarterly all hands",
		Leader:      "Sam Lee",
	}

	mockNotifier := mocks.NewNotifier(t)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("models.EventRequest")).Return(nil)

	mockStore := mocks.NewEventAppender(t)
	mockStore.On("AddEvent", expectedEvent).Return(4)

	w := newTestWorkflow(mockNotifier, mockStore)

	request, err := w.Submit(context.Background(), validForm())
	require.NoError(t, err)

	assert.Equal(t, "req-123", request.RequestID)
	assert.Equal(t, testTime, request.SubmittedAt)
	assert.Equal(t, "Jane Doe", request.Requester.Name)
	assert.Equal(t, "jane@x.com", request.Requester.Email)
	assert.Equal(t, "Town Hall", request.Event.Name)
	assert.Equal(t, "50000", request.Event.Budget)
	assert.True(t, request.Approval.Granted)
	assert.Equal(t, "Sam Lee", request.Approval.ApproverName)

	assert.Equal(t, StateSubmitted, w.State())

	last, err := w.Last()
	require.NoError(t, err)
	assert.Equal(t, "Town Hall", last.Event.Name)

	mockStore.AssertNumberOfCalls(t, "AddEvent", 1)
}

func TestSubmitValidationFailureStaysIdle(t *testing.T) {
	t.Parallel()

	mockNotifier := mocks.NewNotifier(t)
	mockStore := mocks.NewEventAppender(t)

	w := newTestWorkflow(mockNotifier, mockStore)

	form := validForm()
	form.RequesterEmail = ""

	_, err := w.Submit(context.Background(), form)
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)
	assert.Equal(t, "RequesterEmail", validateErr[0].Field())

	assert.Equal(t, StateIdle, w.State())
	mockNotifier.AssertNotCalled(t, "Send")
	mockStore.AssertNotCalled(t, "AddEvent")
}

func TestSubmitMalformedEmailStaysIdle(t *testing.T) {
	t.Parallel()

	mockNotifier := mocks.NewNotifier(t)
	mockStore := mocks.NewEventAppender(t)

	w := newTestWorkflow(mockNotifier, mockStore)

	form := validForm()
	form.RequesterEmail = "not-an-email"

	_, err := w.Submit(context.Background(), form)

	var validateErr validator.ValidationErrors
	require.ErrorAs(t, err, &validateErr)
	assert.Equal(t, "intake_email", validateErr[0].ActualTag())
	assert.Equal(t, StateIdle, w.State())
}

func TestSubmitSendFailureReturnsToIdle(t *testing.T) {
	t.Parallel()

	mockNotifier := mocks.NewNotifier(t)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("models.EventRequest")).
		Return(errors.New("gateway unavailable")).Once()

	mockStore := mocks.NewEventAppender(t)

	w := newTestWorkflow(mockNotifier, mockStore)

	_, err := w.Submit(context.Background(), validForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway unavailable")

	assert.Equal(t, StateIdle, w.State())
	mockStore.AssertNotCalled(t, "AddEvent")

	// The form can be resubmitted after a failure.
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("models.EventRequest")).Return(nil).Once()
	mockStore.On("AddEvent", mock.AnythingOfType("models.Event")).Return(4)

	_, err = w.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, w.State())
}

func TestDoubleSubmitAppendsExactlyOneEvent(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	mockNotifier := mocks.NewNotifier(t)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("models.EventRequest")).
		Run(func(args mock.Arguments) { <-release }).
		Return(nil)

	mockStore := mocks.NewEventAppender(t)
	mockStore.On("AddEvent", mock.AnythingOfType("models.Event")).Return(4)

	w := newTestWorkflow(mockNotifier, mockStore)

	firstDone := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background(), validForm())
		firstDone <- err
	}()

	require.Eventually(t, func() bool {
		return w.State() == StateSubmitting
	}, time.Second, time.Millisecond)

	_, err := w.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	assert.ErrorIs(t, w.Reset(), ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	assert.Equal(t, StateSubmitted, w.State())
	mockStore.AssertNumberOfCalls(t, "AddEvent", 1)
}

func TestSubmitWhileSubmittedRequiresReset(t *testing.T) {
	t.Parallel()

	mockNotifier := mocks.NewNotifier(t)
	mockNotifier.On("Send", mock.Anything, mock.AnythingOfType("models.EventRequest")).Return(nil)

	mockStore := mocks.NewEventAppender(t)
	mockStore.On("AddEvent", mock.AnythingOfType("models.Event")).Return(4)

	w := newTestWorkflow(mockNotifier, mockStore)

	_, err := w.Submit(context.Background(), validForm())
	require.NoError(t, err)

	_, err = w.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	require.NoError(t, w.Reset())
	assert.Equal(t, StateIdle, w.State())

	_, err = w.Last()
	assert.ErrorIs(t, err, ErrNotSubmitted)

	_, err = w.Submit(context.Background(), validForm())
	require.NoError(t, err)
	mockStore.AssertNumberOfCalls(t, "AddEvent", 2)
}

func TestResetFromIdleIsNoop(t *testing.T) {
	t.Parallel()

	w := newTestWorkflow(mocks.NewNotifier(t), mocks.NewEventAppender(t))

	require.NoError(t, w.Reset())
	assert.Equal(t, StateIdle, w.State())
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want float64
	}{
		{"50000", 50000},
		{"₹ 50,000", 50000},
		{"1,20,000.50", 120000.50},
		{"", 0},
		{"TBD", 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, parseAmount(tc.in))
		})
	}
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 150, parseCount("150"))
	assert.Equal(t, 25, parseCount(" 25 "))
	assert.Equal(t, 0, parseCount(""))
	assert.Equal(t, 0, parseCount("-5"))
	assert.Equal(t, 0, parseCount("many"))
}
