package jobpost

import (
	"fmt"
	"strings"

	"fl-jobs/internal/domain"
)

// buildDescription expands the owner's form into a formatted posting
// body. Deterministic string templating; there is no model behind it.
func buildDescription(in domain.CreateJobPostingInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s - %s**\n\n", fallback(in.Position, "Position"), fallback(in.StoreName, "Company"))
	fmt.Fprintf(&b, "**Location:** %s\n", fallback(in.Location, "TBD"))
	fmt.Fprintf(&b, "**Work Hours:** %s\n", fallback(in.WorkHours, "TBD"))
	fmt.Fprintf(&b, "**Wage:** %s\n\n", fallback(in.Wage, "Competitive"))

	fmt.Fprintf(&b, "**Responsibilities:**\n%s\n\n", fallback(in.Responsibilities, "Various duties as assigned"))
	fmt.Fprintf(&b, "**Requirements:**\n%s\n\n", fallback(in.Requirements, "Relevant experience preferred"))

	b.WriteString("We are looking for a dedicated team member to join our growing business.")
	return b.String()
}

func buildSummary(in domain.CreateJobPostingInput) string {
	return fmt.Sprintf("Join our team as a %s at %s",
		fallback(in.Position, "team member"),
		fallback(in.StoreName, "our company"))
}
