package memory

import "eventPortal/internal/models"

// SeedEvents is the demo data the portal starts with.
func SeedEvents() []models.Event {
	return []models.Event{
		{
			Title:     "Q4 Leadership Review",
			Date:      "2024-06-15",
			Time:      "09:00 AM",
			Location:  "Main Conference Room",
			Attendees: 25,
			Budget:    50000,
			Status:    models.StatusUpcoming,
			Planner:   "Elite Events Co.",
			Type:      "executive",
		},
		{
			Title:     "Tech Innovation Summit",
			Date:      "2024-06-20",
			Time:      "10:00 AM",
			Location:  "Auditorium A",
			Attendees: 150,
			Budget:    200000,
			Status:    models.StatusPlanning,
			Planner:   "Corporate Events Plus",
			Type:      "conference",
		},
		{
			Title:     "Team Building Workshop",
			Date:      "2024-06-25",
			Time:      "02:00 PM",
			Location:  "Training Center",
			Attendees: 50,
			Budget:    75000,
			Status:    models.StatusCompleted,
			Planner:   "Team Dynamics Ltd.",
			Type:      "workshop",
		},
	}
}
