package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/nextup/internal/contract"
)

// FormatSuggestion renders one prioritized task with its scoring reasons.
func FormatSuggestion(s *contract.Suggestion, now time.Time) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleFg.Render(s.Task.Title), SourcePill(s.Task.Source)))
	if s.Task.ModuleCode != "" {
		b.WriteString(fmt.Sprintf("   %s\n", Dim(s.Task.ModuleCode)))
	}
	if s.Task.DueAt != nil {
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Due:"), RelativeTimeStyled(*s.Task.DueAt, now)))
	}
	b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Estimate:"), StyleFg.Render(FormatHours(s.Task.EstimatedHours))))
	if s.Task.Link != "" {
		b.WriteString(fmt.Sprintf("   %s\n", Dim(s.Task.Link)))
	}

	for _, reason := range s.Reasons {
		b.WriteString(fmt.Sprintf("   %s %s\n", StyleYellow.Render("REASON:"), Dim(reason.Message)))
	}

	return b.String()
}

// FormatRightNow renders the initial Right Now suggestion as a boxed card.
func FormatRightNow(resp *contract.RightNowResponse) string {
	var b strings.Builder

	if resp.Suggestion == nil {
		b.WriteString(Dim("Nothing left to do. Enjoy the break."))
		b.WriteString("\n")
	} else {
		b.WriteString(FormatSuggestion(resp.Suggestion, resp.GeneratedAt))
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("%d tasks remaining", resp.Remaining)) + "\n")
	}

	appendWarnings(&b, resp.Warnings)
	return RenderBox("Right now", b.String())
}
