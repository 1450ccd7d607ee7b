package contract

import "time"

type SyncRequest struct {
	ShareLink   string
	Semester    int
	CanvasToken string
}

type SyncResponse struct {
	GeneratedAt     time.Time
	AcadYear        string
	Semester        int
	Modules         []ModuleSummary
	AssignmentCount int
	Warnings        []string
}

// ModuleSummary is one synced module's headline numbers.
type ModuleSummary struct {
	ModuleCode       string
	Title            string
	LessonCount      int
	TotalWeeklyHours float64
}
