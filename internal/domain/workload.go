package domain

type WorkloadCategory string

const (
	WorkloadLecture    WorkloadCategory = "lecture"
	WorkloadTutorial   WorkloadCategory = "tutorial"
	WorkloadLab        WorkloadCategory = "lab"
	WorkloadRecitation WorkloadCategory = "recitation"
	WorkloadSelfStudy  WorkloadCategory = "self-study"
	WorkloadSeminar    WorkloadCategory = "seminar"
	WorkloadOther      WorkloadCategory = "other"
)

// WorkloadEntry is one category's declared weekly hours. Hours is the
// midpoint of a declared range, or the single declared value.
type WorkloadEntry struct {
	Declared string
	Hours    float64
}

// WorkloadBreakdown maps workload categories to declared weekly hours.
// A module with no workload field has an empty Entries map and total 0.
type WorkloadBreakdown struct {
	Entries          map[WorkloadCategory]WorkloadEntry
	TotalWeeklyHours float64
}
