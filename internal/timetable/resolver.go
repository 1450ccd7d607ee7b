// Package timetable turns raw NUSMods timetable data into a student's
// concrete weekly schedule: resolving share-link selections to slots,
// computing next occurrences in Singapore time, detecting clashes, and
// extracting declared workloads.
package timetable

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/nextup/internal/domain"
)

// lessonTypeShort maps NUSMods full lesson type names to their short codes.
var lessonTypeShort = map[string]string{
	"Lecture":            "LEC",
	"Tutorial":           "TUT",
	"Laboratory":         "LAB",
	"Recitation":         "REC",
	"Seminar":            "SEM",
	"Sectional Teaching": "SEC",
	"Design Lecture":     "DLEC",
	"Packaged Lecture":   "PLEC",
	"Packaged Tutorial":  "PTUT",
	"Workshop":           "WS",
}

// ShortType returns the short code for a full lesson type name. Unrecognized
// types degrade to a 3-letter uppercase prefix so index resolution still has
// a stable type bucket to filter on.
func ShortType(full string) string {
	if short, ok := lessonTypeShort[full]; ok {
		return short
	}
	cleaned := strings.ToUpper(strings.TrimSpace(full))
	if len(cleaned) > 3 {
		cleaned = cleaned[:3]
	}
	return cleaned
}

// Options filters a module's raw slots to one lesson type, deduplicates them
// by identity key, and assigns ordinal positions in first-seen order. That
// order is the index space encoded selections reference: it must reproduce
// exactly for identical raw input, so dedup preserves encounter order and
// never rehashes or re-sorts.
func Options(slots []domain.RawSlot, lessonTypeShortCode string) []domain.SlotOption {
	var options []domain.SlotOption
	seen := make(map[string]bool)

	for _, slot := range slots {
		short := ShortType(slot.LessonType)
		if short != lessonTypeShortCode {
			continue
		}
		key := dedupKey(short, slot)
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, domain.SlotOption{
			RawSlot:         slot,
			LessonTypeShort: short,
			Ordinal:         len(options),
		})
	}
	return options
}

func dedupKey(short string, slot domain.RawSlot) string {
	return strings.Join([]string{short, slot.ClassNo, slot.Day, slot.StartTime, slot.EndTime, slot.Venue}, "|")
}

// Resolve maps one selection to a concrete lesson. An encoded value that
// parses as a non-negative integer is a positional index into options; any
// other value is a legacy literal class number matched linearly. Out-of-range
// indices and unmatched class numbers report false: the selection is dropped
// and resolution continues for the rest.
func Resolve(moduleCode string, options []domain.SlotOption, sel domain.Selection) (domain.ResolvedLesson, bool) {
	opt, ok := lookup(options, sel.EncodedValue)
	if !ok {
		return domain.ResolvedLesson{}, false
	}
	return domain.ResolvedLesson{
		ModuleCode:      moduleCode,
		LessonTypeShort: opt.LessonTypeShort,
		LessonTypeFull:  opt.LessonType,
		ClassNo:         opt.ClassNo,
		Day:             opt.Day,
		StartTime:       opt.StartTime,
		EndTime:         opt.EndTime,
		Venue:           opt.Venue,
		Weeks:           opt.Weeks,
	}, true
}

func lookup(options []domain.SlotOption, encoded string) (domain.SlotOption, bool) {
	if idx, err := strconv.Atoi(encoded); err == nil && idx >= 0 {
		if idx < len(options) {
			return options[idx], true
		}
		return domain.SlotOption{}, false
	}
	for _, opt := range options {
		if opt.ClassNo == encoded {
			return opt, true
		}
	}
	return domain.SlotOption{}, false
}

// ResolveSelections resolves all of a module's selections against its raw
// slots. Unresolvable selections are silently dropped.
func ResolveSelections(moduleCode string, slots []domain.RawSlot, selections []domain.Selection) []domain.ResolvedLesson {
	optionsByType := make(map[string][]domain.SlotOption)
	var lessons []domain.ResolvedLesson

	for _, sel := range selections {
		if sel.ModuleCode != moduleCode {
			continue
		}
		options, ok := optionsByType[sel.LessonTypeShort]
		if !ok {
			options = Options(slots, sel.LessonTypeShort)
			optionsByType[sel.LessonTypeShort] = options
		}
		if lesson, ok := Resolve(moduleCode, options, sel); ok {
			lessons = append(lessons, lesson)
		}
	}
	return lessons
}
