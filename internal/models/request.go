package models

import "time"

// EventRequest is the submitted form of an intake proposal. The same structure
// is handed to the notification collaborator as its payload.
type EventRequest struct {
	Requester           Requester      `json:"requester"`
	Event               RequestedEvent `json:"event"`
	Description         string         `json:"description"`
	BusinessImpact      string         `json:"businessImpact"`
	EmployeeTakeaway    string         `json:"employeeTakeaway"`
	Approval            Approval       `json:"approval"`
	SpecialArrangements string         `json:"specialArrangements"`
	RequestID           string         `json:"requestId"`
	SubmittedAt         time.Time      `json:"submittedAt"`
}

type Requester struct {
	Name       string `json:"name"`
	Team       string `json:"team"`
	Email      string `json:"email"`
	EmployeeID string `json:"employeeId"`
}

// RequestedEvent keeps the logistics fields as the requester typed them,
// including the budget and head count strings.
type RequestedEvent struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	Budget    string `json:"budget"`
	HeadCount string `json:"headCount"`
}

type Approval struct {
	Granted      bool   `json:"granted"`
	ApproverName string `json:"approverName"`
}
