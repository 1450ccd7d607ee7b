package domain

import "time"

// Selection is one user-chosen class slot per lesson type per module, as
// extracted from an NUSMods share link. Immutable once decoded.
type Selection struct {
	ModuleCode      string
	LessonTypeShort string
	// EncodedValue is a positional index ("5") in current links or a literal
	// class number ("01") in legacy links. The resolver tries both.
	EncodedValue string
}

// RawSlot is one timetable entry as supplied by NUSMods, before resolution.
type RawSlot struct {
	LessonType string // full name, e.g. "Lecture"
	ClassNo    string
	Day        string // "Monday".."Sunday"
	StartTime  string // HHMM, e.g. "1400"
	EndTime    string // HHMM
	Venue      string
	Weeks      []int
}

// SlotOption is a RawSlot annotated with its short lesson type and its
// ordinal position within the deduplicated option list for a
// (module, lesson type) pair. Ordinal positions are the index space that
// encoded selections reference, so they must be stable for identical input.
type SlotOption struct {
	RawSlot
	LessonTypeShort string
	Ordinal         int
}

// ResolvedLesson is the outcome of resolving one Selection against its
// module's slot options.
type ResolvedLesson struct {
	ModuleCode      string
	LessonTypeShort string
	LessonTypeFull  string
	ClassNo         string
	Day             string
	StartTime       string // HHMM
	EndTime         string // HHMM
	Venue           string
	Weeks           []int
}

// Occurrence is a concrete future calendar instance of a ResolvedLesson.
// StartAt is always after the reference "now" used to compute it.
type Occurrence struct {
	Lesson  ResolvedLesson
	StartAt time.Time
	EndAt   time.Time
}

// ClashRecord is an unordered pair of lessons with overlapping time ranges
// on the same weekday.
type ClashRecord struct {
	First       ResolvedLesson
	Second      ResolvedLesson
	Description string
}
