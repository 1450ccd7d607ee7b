package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cde2501JSON = `{
	"moduleCode": "CDE2501",
	"title": "Liveable Cities",
	"workload": ["Lecture: 2 hours", "Tutorial: 2 hours", "Preparation: 6 hours"],
	"semesterData": [
		{
			"semester": 2,
			"timetable": [
				{"classNo": "26", "lessonType": "Tutorial", "day": "Friday",
				 "startTime": "0900", "endTime": "1200", "venue": "SDE1-TR1"}
			]
		}
	]
}`

// memoryCache is an always-fresh in-memory ModuleCache for builder tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	puts    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, moduleCode, acadYear string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.entries[moduleCode+"/"+acadYear]
	if ok {
		c.hits++
	}
	return body, ok, nil
}

func (c *memoryCache) Put(_ context.Context, moduleCode, acadYear string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[moduleCode+"/"+acadYear] = payload
	c.puts++
	return nil
}

func testBuilder(t *testing.T, cache ModuleCache) (*Builder, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	nusmodsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/2025-2026/modules/CS2040C.json":
			w.Write([]byte(cs2040cJSON))
		case "/2025-2026/modules/CDE2501.json":
			w.Write([]byte(cde2501JSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(nusmodsSrv.Close)

	canvasSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(canvasTodosJSON))
	}))
	t.Cleanup(canvasSrv.Close)

	cfg := testConfig(nusmodsSrv.URL, canvasSrv.URL)
	return NewBuilder(cfg, NewNUSModsClient(cfg), NewCanvasClient(cfg), cache), &requests
}

const testShareLink = "https://nusmods.com/timetable/sem-2/share?CS2040C=LAB:(0);LEC:(0)&CDE2501=TUT:(0)"

func TestBuild(t *testing.T) {
	b, _ := testBuilder(t, nil)

	planner, err := b.Build(context.Background(), testShareLink, 2, "tok")
	require.NoError(t, err)
	require.Len(t, planner.Modules, 2)
	assert.Empty(t, planner.Warnings)

	// Heaviest declared workload first.
	assert.Equal(t, "CS2040C", planner.Modules[0].ModuleCode)
	assert.InDelta(t, 12.0, planner.Modules[0].Workload.TotalWeeklyHours, 0.001)
	assert.Equal(t, "CDE2501", planner.Modules[1].ModuleCode)
	assert.InDelta(t, 10.0, planner.Modules[1].Workload.TotalWeeklyHours, 0.001)

	require.Len(t, planner.Modules[0].Lessons, 2)
	assert.Equal(t, "LAB", planner.Modules[0].Lessons[0].LessonTypeShort)
	assert.Equal(t, "LEC", planner.Modules[0].Lessons[1].LessonTypeShort)
	require.Len(t, planner.Modules[1].Lessons, 1)
	assert.Equal(t, "26", planner.Modules[1].Lessons[0].ClassNo)

	require.Len(t, planner.Assignments, 3)
}

func TestBuild_InvalidLinkIsHardError(t *testing.T) {
	b, _ := testBuilder(t, nil)

	_, err := b.Build(context.Background(), "https://nusmods.com/timetable/sem-2/share", 2, "")
	require.Error(t, err)
}

func TestBuild_ModuleFailureIsIsolated(t *testing.T) {
	b, _ := testBuilder(t, nil)

	link := "https://nusmods.com/timetable/sem-2/share?CS2040C=LEC:(0)&ZZ9999=LEC:(0)"
	planner, err := b.Build(context.Background(), link, 2, "")
	require.NoError(t, err)

	require.Len(t, planner.Modules, 1)
	assert.Equal(t, "CS2040C", planner.Modules[0].ModuleCode)
	require.Len(t, planner.Warnings, 1)
	assert.Contains(t, planner.Warnings[0], "ZZ9999")
}

func TestBuild_CanvasFailureIsSoft(t *testing.T) {
	nusmodsSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(cs2040cJSON))
	}))
	defer nusmodsSrv.Close()
	canvasSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer canvasSrv.Close()

	cfg := testConfig(nusmodsSrv.URL, canvasSrv.URL)
	b := NewBuilder(cfg, NewNUSModsClient(cfg), NewCanvasClient(cfg), nil)

	planner, err := b.Build(context.Background(), "https://nusmods.com/timetable/sem-2/share?CS2040C=LEC:(0)", 2, "tok")
	require.NoError(t, err)
	assert.Empty(t, planner.Assignments)
	require.Len(t, planner.Warnings, 1)
	assert.Contains(t, planner.Warnings[0], "assignments unavailable")
}

func TestBuild_CachesModuleFetches(t *testing.T) {
	cache := newMemoryCache()
	b, requests := testBuilder(t, cache)

	_, err := b.Build(context.Background(), testShareLink, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
	assert.Equal(t, 2, cache.puts)

	_, err = b.Build(context.Background(), testShareLink, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load(), "second build should be served from cache")
	assert.Equal(t, 2, cache.hits)
}

func TestBuild_CorruptCacheEntryRefetches(t *testing.T) {
	cache := newMemoryCache()
	cache.entries["CS2040C/2025-2026"] = []byte("{not json")
	b, requests := testBuilder(t, cache)

	planner, err := b.Build(context.Background(), "https://nusmods.com/timetable/sem-2/share?CS2040C=LEC:(0)", 2, "")
	require.NoError(t, err)
	require.Len(t, planner.Modules, 1)
	assert.Equal(t, int32(1), requests.Load())
}
