package intake

// Form mirrors the event request intake form field for field. Every value
// arrives as a string; fields without the required rule may stay empty.
// Required values are not trimmed, so whitespace-only input passes the
// emptiness check (matches the original form behavior).
type Form struct {
	RequesterName       string `json:"requesterName" validate:"required"`
	RequesterTeam       string `json:"requesterTeam" validate:"required"`
	RequesterEmail      string `json:"requesterEmail" validate:"required,intake_email"`
	RequesterEmployeeID string `json:"requesterEmployeeId" validate:"required"`
	EventName           string `json:"eventName" validate:"required"`
	EventDate           string `json:"eventDate" validate:"required"`
	PreferredTime       string `json:"preferredTime" validate:"required"`
	EventDescription    string `json:"eventDescription" validate:"required"`
	BusinessImpact      string `json:"businessImpact" validate:"required"`
	EmployeeTakeaway    string `json:"employeeTakeaway" validate:"required"`
	TentativeBudget     string `json:"tentativeBudget" validate:"required"`
	HeadCount           string `json:"headCount"`
	VenuePreferred      string `json:"venuePreferred" validate:"required"`
	LeaderApproval      string `json:"leaderApproval" validate:"required"`
	ApproverName        string `json:"approverName" validate:"required"`
	SpecialArrangements string `json:"specialArrangements"`
}
