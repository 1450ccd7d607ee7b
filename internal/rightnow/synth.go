package rightnow

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/google/uuid"
)

// Task IDs are SHA1 UUIDs in fixed namespaces so re-synthesizing from the
// same source record always yields the same ID. Done/skip tracking depends
// on this: a random ID per call would make exclusion sets useless.
var (
	studyTaskNamespace      = uuid.MustParse("8a6e1f5c-3b77-4a0d-9b41-2f8f6f0c5d11")
	assignmentTaskNamespace = uuid.MustParse("c4d0a9e2-7f15-4c38-8a52-6b9d3e1f7a20")
)

// StudyTaskID derives the stable ID for a study task keyed by module code
// and occurrence start.
func StudyTaskID(moduleCode string, startAt time.Time) string {
	key := moduleCode + "|" + startAt.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(studyTaskNamespace, []byte(key)).String()
}

// AssignmentTaskID derives the stable ID for an assignment task.
func AssignmentTaskID(a domain.Assignment) string {
	key := a.Course + "|" + a.Title
	if a.DueAt != nil {
		key += "|" + a.DueAt.UTC().Format(time.RFC3339)
	}
	return uuid.NewSHA1(assignmentTaskNamespace, []byte(key)).String()
}

const (
	studyTaskHours          = 0.5 // fixed 30-minute pre-study block
	assignmentImportance    = 4
	assignmentDifficulty    = 3
	assignmentDefaultHours  = 2.0
	studyImportance         = 2
	studyLectureImportance  = 3
	studyDifficulty         = 2
	maxWorkloadDerivedHours = 4.0
)

// AssignmentTasks converts assignment records into task candidates.
// workloadByModule, when the course label matches a module code, informs the
// estimate; otherwise a flat default applies.
func AssignmentTasks(assignments []domain.Assignment, workloadByModule map[string]float64) []domain.Task {
	tasks := make([]domain.Task, 0, len(assignments))
	for _, a := range assignments {
		estimate := assignmentDefaultHours
		if weekly, ok := workloadByModule[a.Course]; ok && weekly > 0 {
			estimate = weekly / 2
			if estimate > maxWorkloadDerivedHours {
				estimate = maxWorkloadDerivedHours
			}
		}
		tasks = append(tasks, domain.Task{
			ID:             AssignmentTaskID(a),
			Title:          a.Title,
			Source:         domain.TaskSourceAssignment,
			ModuleCode:     a.Course,
			Importance:     assignmentImportance,
			EstimatedHours: estimate,
			Difficulty:     assignmentDifficulty,
			DueAt:          a.DueAt,
			Link:           a.Link,
		})
	}
	return tasks
}

// StudyTasks synthesizes one fixed-duration pre-study task per upcoming
// occurrence. Lecture occurrences sort ahead of the rest (stable within each
// group) because pre-studying lecture content pays off most; they also carry
// slightly higher importance.
func StudyTasks(occurrences []domain.Occurrence) []domain.Task {
	ordered := make([]domain.Occurrence, len(occurrences))
	copy(ordered, occurrences)
	sort.SliceStable(ordered, func(i, j int) bool {
		return isLecture(ordered[i]) && !isLecture(ordered[j])
	})

	tasks := make([]domain.Task, 0, len(ordered))
	for _, occ := range ordered {
		importance := studyImportance
		if isLecture(occ) {
			importance = studyLectureImportance
		}
		due := occ.StartAt
		tasks = append(tasks, domain.Task{
			ID:             StudyTaskID(occ.Lesson.ModuleCode, occ.StartAt),
			Title:          fmt.Sprintf("Prep for %s %s (%s %s)", occ.Lesson.ModuleCode, occ.Lesson.LessonTypeShort, occ.Lesson.Day, domain.FormatClock(occ.Lesson.StartTime)),
			Source:         domain.TaskSourceSchedule,
			ModuleCode:     occ.Lesson.ModuleCode,
			Importance:     importance,
			EstimatedHours: studyTaskHours,
			Difficulty:     studyDifficulty,
			DueAt:          &due,
		})
	}
	return tasks
}

func isLecture(occ domain.Occurrence) bool {
	return occ.Lesson.LessonTypeShort == "LEC"
}
