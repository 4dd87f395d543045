package catalog

import "eventPortal/internal/models"

// Reference bundles the static arrays behind the planners, leadership and
// budget pages.
type Reference struct{}

func NewReference() *Reference {
	return &Reference{}
}

func (r *Reference) Planners() []models.Planner {
	out := make([]models.Planner, len(planners))
	copy(out, planners)

	return out
}

func (r *Reference) Leaders() []models.Leader {
	out := make([]models.Leader, len(leaders))
	copy(out, leaders)

	return out
}

func (r *Reference) Assignments() []models.LeaderAssignment {
	out := make([]models.LeaderAssignment, len(assignments))
	copy(out, assignments)

	return out
}

func (r *Reference) BudgetCategories() []models.BudgetCategory {
	out := make([]models.BudgetCategory, len(budgetCategories))
	copy(out, budgetCategories)

	return out
}

func (r *Reference) RecentExpenses() []models.Expense {
	out := make([]models.Expense, len(recentExpenses))
	copy(out, recentExpenses)

	return out
}

var planners = []models.Planner{
	{
		ID:              1,
		Name:            "Elite Events Co.",
		Contact:         "Priya Sharma",
		Phone:           "+91 98765 43210",
		Email:           "priya@eliteevents.com",
		Location:        "Chennai",
		Specialties:     []string{"Executive Events", "Corporate Meetings"},
		Rating:          4.8,
		EventsCompleted: 25,
		AverageCost:     75000,
		Availability:    "available",
	},
	{
		ID:              2,
		Name:            "Corporate Events Plus",
		Contact:         "Rajesh Kumar",
		Phone:           "+91 98765 43211",
		Email:           "rajesh@corporateevents.com",
		Location:        "Chennai",
		Specialties:     []string{"Conferences", "Team Building"},
		Rating:          4.6,
		EventsCompleted: 18,
		AverageCost:     120000,
		Availability:    "busy",
	},
	{
		ID:              3,
		Name:            "Team Dynamics Ltd.",
		Contact:         "Anita Reddy",
		Phone:           "+91 98765 43212",
		Email:           "anita@teamdynamics.com",
		Location:        "Chennai",
		Specialties:     []string{"Workshops", "Training Events"},
		Rating:          4.7,
		EventsCompleted: 32,
		AverageCost:     45000,
		Availability:    "available",
	},
	{
		ID:              4,
		Name:            "Luxury Event Solutions",
		Contact:         "Vikram Patel",
		Phone:           "+91 98765 43213",
		Email:           "vikram@luxuryevents.com",
		Location:        "Chennai",
		Specialties:     []string{"VIP Events", "Executive Retreats"},
		Rating:          4.9,
		EventsCompleted: 15,
		AverageCost:     200000,
		Availability:    "available",
	},
}

var leaders = []models.Leader{
	{
		ID:                   1,
		Name:                 "Balaji Nadar",
		Role:                 "VP Technology",
		Level:                "VP",
		Department:           "Technology",
		Email:                "balaji.nadar@comcast.com",
		Phone:                "+91 98765 43214",
		EventsAssigned:       8,
		BudgetResponsibility: 2000000,
		DirectReports:        3,
	},
	{
		ID:                   2,
		Name:                 "ILLAN",
		Role:                 "VP Operations",
		Level:                "VP",
		Department:           "Operations",
		Email:                "illan@comcast.com",
		Phone:                "+91 98765 43215",
		EventsAssigned:       5,
		BudgetResponsibility: 1800000,
		DirectReports:        4,
		ReportsTo:            1,
	},
	{
		ID:                   3,
		Name:                 "Ganesh",
		Role:                 "Senior Director Engineering",
		Level:                "Senior Director",
		Department:           "Engineering",
		Email:                "ganesh@comcast.com",
		Phone:                "+91 98765 43216",
		EventsAssigned:       6,
		BudgetResponsibility: 1200000,
		DirectReports:        5,
		ReportsTo:            1,
	},
	{
		ID:                   4,
		Name:                 "Narotom",
		Role:                 "VP Strategy",
		Level:                "VP",
		Department:           "Strategy",
		Email:                "narotom@comcast.com",
		Phone:                "+91 98765 43217",
		EventsAssigned:       4,
		BudgetResponsibility: 1500000,
		DirectReports:        3,
		ReportsTo:            1,
	},
	{
		ID:                   5,
		Name:                 "Harish",
		Role:                 "Manager Events",
		Level:                "Manager",
		Department:           "Operations",
		Email:                "harish@comcast.com",
		Phone:                "+91 98765 43218",
		EventsAssigned:       12,
		BudgetResponsibility: 500000,
		DirectReports:        2,
		ReportsTo:            2,
	},
}

var assignments = []models.LeaderAssignment{
	{ID: 1, Name: "Q4 Review", Leader: "Balaji Nadar", Date: "2024-06-15"},
	{ID: 2, Name: "Tech Summit", Leader: "ILLAN", Date: "2024-06-20"},
	{ID: 3, Name: "Operations Meeting", Leader: "Ganesh", Date: "2024-06-25"},
}

var budgetCategories = []models.BudgetCategory{
	{Category: "Executive Events", Allocated: 500000, Used: 320000, Remaining: 180000, Events: 3},
	{Category: "Team Building", Allocated: 200000, Used: 150000, Remaining: 50000, Events: 5},
	{Category: "Training & Development", Allocated: 300000, Used: 180000, Remaining: 120000, Events: 8},
	{Category: "Client Events", Allocated: 400000, Used: 350000, Remaining: 50000, Events: 4},
}

var recentExpenses = []models.Expense{
	{ID: 1, Event: "Q4 Leadership Review", Amount: 45000, Category: "Venue & Catering", Date: "2024-06-10"},
	{ID: 2, Event: "Tech Summit", Amount: 25000, Category: "Equipment Rental", Date: "2024-06-08"},
	{ID: 3, Event: "Team Workshop", Amount: 15000, Category: "Facilitator Fees", Date: "2024-06-05"},
}
