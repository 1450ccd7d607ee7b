package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nextup/internal/contract"
)

// FormatClashes renders clash records, or a green all-clear when none exist.
func FormatClashes(resp *contract.ClashResponse) string {
	var b strings.Builder

	b.WriteString(Header("Timetable clashes"))
	b.WriteString("\n\n")

	if len(resp.Clashes) == 0 {
		b.WriteString(StyleGreen.Render("✔ No clashes found.") + "\n")
		appendWarnings(&b, resp.Warnings)
		return b.String()
	}

	for i, clash := range resp.Clashes {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleRed.Render("✖"), StyleFg.Render(clash.Description)))
		b.WriteString(fmt.Sprintf("    %s  %s\n", LessonLabel(clash.First), Dim(DayTimeRange(clash.First))))
		b.WriteString(fmt.Sprintf("    %s  %s\n", LessonLabel(clash.Second), Dim(DayTimeRange(clash.Second))))
		if i < len(resp.Clashes)-1 {
			b.WriteString("\n")
		}
	}

	appendWarnings(&b, resp.Warnings)
	return b.String()
}
