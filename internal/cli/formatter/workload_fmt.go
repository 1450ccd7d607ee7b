package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
)

// categoryOrder fixes the display order of workload categories.
var categoryOrder = []domain.WorkloadCategory{
	domain.WorkloadLecture,
	domain.WorkloadTutorial,
	domain.WorkloadLab,
	domain.WorkloadRecitation,
	domain.WorkloadSeminar,
	domain.WorkloadSelfStudy,
	domain.WorkloadOther,
}

// FormatWorkload renders per-module weekly workload breakdowns.
func FormatWorkload(resp *contract.WorkloadResponse) string {
	var b strings.Builder

	b.WriteString(Header("Weekly workload"))
	b.WriteString("\n\n")

	for i, mod := range resp.Modules {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			Bold(mod.ModuleCode),
			StyleFg.Render(mod.Title),
			StyleBlue.Render(FormatHours(mod.Breakdown.TotalWeeklyHours)+"/wk")))
		for _, cat := range sortedCategories(mod.Breakdown) {
			entry := mod.Breakdown.Entries[cat]
			b.WriteString(fmt.Sprintf("    %-12s %s  %s\n",
				string(cat), StyleFg.Render(FormatHours(entry.Hours)), Dim(entry.Declared)))
		}
		if i < len(resp.Modules)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Total: %s per week", FormatHours(resp.TotalWeeklyHours))) + "\n")

	appendWarnings(&b, resp.Warnings)
	return b.String()
}

func sortedCategories(breakdown domain.WorkloadBreakdown) []domain.WorkloadCategory {
	rank := make(map[domain.WorkloadCategory]int, len(categoryOrder))
	for i, cat := range categoryOrder {
		rank[cat] = i
	}
	cats := make([]domain.WorkloadCategory, 0, len(breakdown.Entries))
	for cat := range breakdown.Entries {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return rank[cats[i]] < rank[cats[j]] })
	return cats
}

// FormatSync renders the sync summary.
func FormatSync(resp *contract.SyncResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Synced %s semester %d", resp.AcadYear, resp.Semester)))
	b.WriteString("\n\n")

	if len(resp.Modules) == 0 {
		b.WriteString(Dim("No modules resolved from the share link."))
		b.WriteString("\n")
	}
	for _, mod := range resp.Modules {
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			StyleGreen.Render("✔"),
			Bold(mod.ModuleCode),
			StyleFg.Render(mod.Title),
			Dim(fmt.Sprintf("%d lessons, %s/wk", mod.LessonCount, FormatHours(mod.TotalWeeklyHours)))))
	}

	b.WriteString("\n")
	b.WriteString(StyleBlue.Render(fmt.Sprintf("Assignments tracked: %d", resp.AssignmentCount)) + "\n")

	appendWarnings(&b, resp.Warnings)
	return b.String()
}
