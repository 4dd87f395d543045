package models

type Planner struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Contact         string   `json:"contact"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Location        string   `json:"location"`
	Specialties     []string `json:"specialties"`
	Rating          float64  `json:"rating"`
	EventsCompleted int      `json:"events_completed"`
	AverageCost     float64  `json:"average_cost"`
	Availability    string   `json:"availability"`
}

type Leader struct {
	ID                   int     `json:"id"`
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	Level                string  `json:"level"`
	Department           string  `json:"department"`
	Email                string  `json:"email"`
	Phone                string  `json:"phone"`
	EventsAssigned       int     `json:"events_assigned"`
	BudgetResponsibility float64 `json:"budget_responsibility"`
	DirectReports        int     `json:"direct_reports"`
	ReportsTo            int     `json:"reports_to,omitempty"`
}

type LeaderAssignment struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Leader string `json:"leader"`
	Date   string `json:"date"`
}

type BudgetCategory struct {
	Category  string  `json:"category"`
	Allocated float64 `json:"allocated"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
	Events    int     `json:"events"`
}

type Expense struct {
	ID       int     `json:"id"`
	Event    string  `json:"event"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}
