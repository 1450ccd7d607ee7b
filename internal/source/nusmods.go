package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// ErrModuleNotFound indicates NUSMods has no data for the requested module
// in the requested academic year. Callers treat this as "skip the module".
var ErrModuleNotFound = errors.New("nusmods module not found")

// ModuleDetail is the subset of the NUSMods module JSON the planner needs.
type ModuleDetail struct {
	ModuleCode   string          `json:"moduleCode"`
	Title        string          `json:"title"`
	Workload     json.RawMessage `json:"workload"`
	SemesterData []SemesterData  `json:"semesterData"`
}

// SemesterData is one semester's timetable block.
type SemesterData struct {
	Semester  int               `json:"semester"`
	Timetable []TimetableLesson `json:"timetable"`
}

// TimetableLesson is one raw timetable entry as served by NUSMods.
type TimetableLesson struct {
	ClassNo    string          `json:"classNo"`
	LessonType string          `json:"lessonType"`
	Day        string          `json:"day"`
	StartTime  string          `json:"startTime"`
	EndTime    string          `json:"endTime"`
	Venue      string          `json:"venue"`
	Weeks      json.RawMessage `json:"weeks"`
}

// RawSlot converts the wire lesson into the domain representation.
// NUSMods serializes weeks as either a plain array or a range object;
// only the array form carries usable week numbers here.
func (l TimetableLesson) RawSlot() domain.RawSlot {
	var weeks []int
	if len(l.Weeks) > 0 {
		_ = json.Unmarshal(l.Weeks, &weeks)
	}
	return domain.RawSlot{
		LessonType: l.LessonType,
		ClassNo:    l.ClassNo,
		Day:        l.Day,
		StartTime:  l.StartTime,
		EndTime:    l.EndTime,
		Venue:      l.Venue,
		Weeks:      weeks,
	}
}

// SemesterBlock returns the block for the requested semester, falling back
// to the first available block when the module is not offered in it.
func (d *ModuleDetail) SemesterBlock(semester int) *SemesterData {
	for i := range d.SemesterData {
		if d.SemesterData[i].Semester == semester {
			return &d.SemesterData[i]
		}
	}
	if len(d.SemesterData) > 0 {
		return &d.SemesterData[0]
	}
	return nil
}

// WorkloadEntries normalizes the workload field to a list of declaration
// strings for the extractor. NUSMods serves a single string, an array of
// strings, or an array of bare hour numbers.
func (d *ModuleDetail) WorkloadEntries() []string {
	if len(d.Workload) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(d.Workload, &single); err == nil {
		return []string{single}
	}
	var many []string
	if err := json.Unmarshal(d.Workload, &many); err == nil {
		return many
	}
	var numbers []float64
	if err := json.Unmarshal(d.Workload, &numbers); err == nil {
		entries := make([]string, 0, len(numbers))
		for _, n := range numbers {
			entries = append(entries, fmt.Sprintf("%g hours", n))
		}
		return entries
	}
	return nil
}

// NUSModsClient fetches module data from the NUSMods v2 API.
type NUSModsClient struct {
	base  string
	httpc *http.Client
}

// NewNUSModsClient creates a client against cfg's endpoint and timeout.
func NewNUSModsClient(cfg Config) *NUSModsClient {
	return &NUSModsClient{
		base:  cfg.NUSModsBase,
		httpc: &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
	}
}

// FetchModuleRaw retrieves the raw module JSON body. Callers decode with
// DecodeModuleDetail; the raw form is what the cache stores.
func (c *NUSModsClient) FetchModuleRaw(ctx context.Context, moduleCode, acadYear string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s/modules/%s.json", c.base, acadYear, moduleCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building nusmods request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching module %s: %w", moduleCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("module %s (%s): %w", moduleCode, acadYear, ErrModuleNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching module %s: unexpected status %d", moduleCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading module %s response: %w", moduleCode, err)
	}
	return body, nil
}

// DecodeModuleDetail parses a module JSON body.
func DecodeModuleDetail(body []byte) (*ModuleDetail, error) {
	var detail ModuleDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("decoding module detail: %w", err)
	}
	return &detail, nil
}
