package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cs2040cJSON = `{
	"moduleCode": "CS2040C",
	"title": "Data Structures and Algorithms",
	"workload": [2, 1, 3, 3, 3],
	"semesterData": [
		{
			"semester": 2,
			"timetable": [
				{"classNo": "01", "lessonType": "Laboratory", "day": "Monday",
				 "startTime": "0900", "endTime": "1200", "venue": "COM1-B108",
				 "weeks": [1,2,3,4,5,6]},
				{"classNo": "01", "lessonType": "Lecture", "day": "Thursday",
				 "startTime": "1000", "endTime": "1200", "venue": "LT19",
				 "weeks": [1,2,3,4,5,6]}
			]
		}
	]
}`

func testNUSModsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2025-2026/modules/CS2040C.json":
			w.Write([]byte(cs2040cJSON))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(nusmodsBase, canvasBase string) Config {
	cfg := DefaultConfig()
	cfg.NUSModsBase = nusmodsBase
	cfg.CanvasBase = canvasBase
	cfg.Semester = 2
	return cfg
}

func TestFetchModuleRaw(t *testing.T) {
	srv := testNUSModsServer(t)
	client := NewNUSModsClient(testConfig(srv.URL, ""))

	body, err := client.FetchModuleRaw(context.Background(), "CS2040C", "2025-2026")
	require.NoError(t, err)
	detail, err := DecodeModuleDetail(body)
	require.NoError(t, err)

	assert.Equal(t, "CS2040C", detail.ModuleCode)
	assert.Equal(t, "Data Structures and Algorithms", detail.Title)

	block := detail.SemesterBlock(2)
	require.NotNil(t, block)
	require.Len(t, block.Timetable, 2)

	slot := block.Timetable[0].RawSlot()
	assert.Equal(t, "Laboratory", slot.LessonType)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slot.Weeks)
}

func TestFetchModuleRaw_NotFound(t *testing.T) {
	srv := testNUSModsServer(t)
	client := NewNUSModsClient(testConfig(srv.URL, ""))

	_, err := client.FetchModuleRaw(context.Background(), "ZZ9999", "2025-2026")
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestSemesterBlock_FallsBackToFirst(t *testing.T) {
	detail, err := DecodeModuleDetail([]byte(cs2040cJSON))
	require.NoError(t, err)

	block := detail.SemesterBlock(1)
	require.NotNil(t, block)
	assert.Equal(t, 2, block.Semester)
}

func TestWorkloadEntries_Forms(t *testing.T) {
	cases := []struct {
		name string
		json string
		want []string
	}{
		{"numbers", `{"workload": [2, 1.5]}`, []string{"2 hours", "1.5 hours"}},
		{"strings", `{"workload": ["Lecture: 2 hours", "Tutorial: 1 hours"]}`, []string{"Lecture: 2 hours", "Tutorial: 1 hours"}},
		{"single string", `{"workload": "10 hours total"}`, []string{"10 hours total"}},
		{"absent", `{}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			detail, err := DecodeModuleDetail([]byte(tc.json))
			require.NoError(t, err)
			assert.Equal(t, tc.want, detail.WorkloadEntries())
		})
	}
}
