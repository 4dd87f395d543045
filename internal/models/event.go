package models

// Known event statuses. The status set is open: values outside this list are
// stored and filtered as opaque strings.
const (
	StatusUpcoming  = "upcoming"
	StatusPlanning  = "planning"
	StatusCompleted = "completed"
)

type Event struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Attendees   int     `json:"attendees"`
	Budget      float64 `json:"budget"`
	Status      string  `json:"status"`
	Planner     string  `json:"planner"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Leader      string  `json:"leader,omitempty"`
}
