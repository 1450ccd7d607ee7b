package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nextup/internal/contract"
)

// FormatSchedule renders the upcoming-classes listing grouped by calendar day.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Upcoming classes (next %dd)", resp.WindowDays)))
	b.WriteString("\n\n")

	if len(resp.Occurrences) == 0 {
		b.WriteString(Dim("No classes in this window."))
		b.WriteString("\n")
	}

	lastDay := ""
	for _, occ := range resp.Occurrences {
		day := occ.StartAt.Format("Mon Jan 2")
		if day != lastDay {
			if lastDay != "" {
				b.WriteString("\n")
			}
			b.WriteString(StyleHeader.Render(day) + "\n")
			lastDay = day
		}
		line := fmt.Sprintf("  %s  %s  %s",
			StyleBlue.Render(occ.StartAt.Format("15:04")+"-"+occ.EndAt.Format("15:04")),
			LessonLabel(occ.Lesson),
			Dim(occ.Lesson.Venue))
		b.WriteString(line + "\n")
	}

	appendWarnings(&b, resp.Warnings)
	return b.String()
}

// FormatNextClass renders the single next occurrence with a countdown.
func FormatNextClass(resp *contract.NextClassResponse) string {
	var b strings.Builder

	occ := *resp.Next
	b.WriteString(LessonLabel(occ.Lesson) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("When:"),
		StyleFg.Render(occ.StartAt.Format("Monday 15:04"))+"  "+RelativeTimeStyled(occ.StartAt, resp.GeneratedAt)))
	if occ.Lesson.Venue != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Where:"), StyleFg.Render(occ.Lesson.Venue)))
	}

	appendWarnings(&b, resp.Warnings)
	return RenderBox("Next class", b.String())
}

func appendWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}
