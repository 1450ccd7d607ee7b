package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeTimeFrom returns a human-friendly countdown string from a reference
// time, at hour granularity below two days and day granularity beyond.
func RelativeTimeFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	hours := diff.Hours()

	switch {
	case hours < 0:
		return "Overdue"
	case hours < 1:
		return fmt.Sprintf("In %dm", int(diff.Minutes()))
	case hours < 48:
		return fmt.Sprintf("In %dh", int(hours))
	default:
		return fmt.Sprintf("In %dd", int(math.Round(hours/24)))
	}
}

// RelativeTimeStyled returns RelativeTimeFrom with urgency coloring applied:
// red within a day or overdue, yellow within three days.
func RelativeTimeStyled(t time.Time, now time.Time) string {
	text := RelativeTimeFrom(t, now)
	hours := t.Sub(now).Hours()

	switch {
	case hours <= 24:
		return StyleRed.Render(text)
	case hours <= 72:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// DayTimeRange renders "Tuesday 10:00-12:00" for a lesson.
func DayTimeRange(lesson domain.ResolvedLesson) string {
	return fmt.Sprintf("%s %s-%s", lesson.Day,
		domain.FormatClock(lesson.StartTime), domain.FormatClock(lesson.EndTime))
}

// LessonLabel renders "CS2040C LEC [01]".
func LessonLabel(lesson domain.ResolvedLesson) string {
	return fmt.Sprintf("%s %s [%s]",
		StyleBold.Render(lesson.ModuleCode),
		StylePurple.Render(lesson.LessonTypeShort),
		lesson.ClassNo)
}

// SourcePill returns a colored origin indicator for a task.
func SourcePill(source domain.TaskSource) string {
	switch source {
	case domain.TaskSourceAssignment:
		return StyleBlue.Render("● Assignment")
	case domain.TaskSourceSchedule:
		return StyleGreen.Render("● Study")
	default:
		return StyleDim.Render(string(source))
	}
}

// FormatHours renders fractional weekly hours compactly ("2h", "1.5h").
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0fh", h)
	}
	return fmt.Sprintf("%.1fh", h)
}
