package export

import (
	"fmt"
	"strings"
	"time"

	"eventPortal/internal/models"
)

// Summary renders a submitted request as a plain-text file for local
// download. Returns the suggested filename and the content.
func Summary(request models.EventRequest) (string, string) {
	filename := fmt.Sprintf("event-request-%s.txt", request.RequestID)

	var b strings.Builder

	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	line("CIEC EVENT REQUEST SUMMARY")
	line("==========================")
	line("Request ID: %s", request.RequestID)
	line("Submitted:  %s", request.SubmittedAt.Format(time.RFC1123))
	line("")
	line("REQUESTER")
	line("  Name:        %s", request.Requester.Name)
	line("  Team:        %s", request.Requester.Team)
	line("  Email:       %s", request.Requester.Email)
	line("  Employee ID: %s", request.Requester.EmployeeID)
	line("")
	line("EVENT")
	line("  Name:       %s", request.Event.Name)
	line("  Date:       %s", request.Event.Date)
	line("  Time:       %s", request.Event.Time)
	line("  Venue:      %s", request.Event.Venue)
	line("  Budget:     %s", request.Event.Budget)
	line("  Head count: %s", request.Event.HeadCount)
	line("")
	line("Description:       %s", request.Description)
	line("Business impact:   %s", request.BusinessImpact)
	line("Employee takeaway: %s", request.EmployeeTakeaway)
	line("")
	line("Leader approval: %s (approver: %s)", yesNo(request.Approval.Granted), request.Approval.ApproverName)

	if request.SpecialArrangements != "" {
		line("Special arrangements: %s", request.SpecialArrangements)
	}

	return filename, b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
