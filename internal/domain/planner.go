package domain

// PlannerModule is one module with its resolved lessons and workload.
type PlannerModule struct {
	ModuleCode string
	Title      string
	Workload   WorkloadBreakdown
	Lessons    []ResolvedLesson
}

// Planner is the merged view of a student's semester: timetable-derived
// modules plus externally-sourced assignments. Modules are sorted by total
// weekly workload, heaviest first.
type Planner struct {
	Modules     []PlannerModule
	Assignments []Assignment

	// Warnings records modules that could not be fetched or resolved.
	// Per-module failures are soft: the rest of the planner still builds.
	Warnings []string
}

// Lessons flattens all resolved lessons across modules.
func (p *Planner) Lessons() []ResolvedLesson {
	var out []ResolvedLesson
	for _, m := range p.Modules {
		out = append(out, m.Lessons...)
	}
	return out
}

// WorkloadByModule returns each module's total weekly hours.
func (p *Planner) WorkloadByModule() map[string]float64 {
	out := make(map[string]float64, len(p.Modules))
	for _, m := range p.Modules {
		out[m.ModuleCode] = m.Workload.TotalWeeklyHours
	}
	return out
}
