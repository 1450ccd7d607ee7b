// Package source talks to the external data collaborators: the NUSMods API
// for module timetables and workloads, and the Canvas API for assignment
// todos. The Builder orchestrates both into a Planner, caching module
// fetches and isolating per-module failures.
package source

import (
	"os"
	"strconv"
)

// Config holds all external-source settings.
type Config struct {
	NUSModsBase   string
	CanvasBase    string
	AcadYear      string
	Semester      int
	ShareLink     string
	CanvasToken   string
	TimeoutMs     int
	CacheTTLHours int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NUSModsBase:   "https://api.nusmods.com/v2",
		CanvasBase:    "https://canvas.nus.edu.sg",
		AcadYear:      "2025-2026",
		Semester:      1,
		TimeoutMs:     10000,
		CacheTTLHours: 24,
	}
}

// LoadConfig reads source configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NEXTUP_NUSMODS_BASE"); v != "" {
		cfg.NUSModsBase = v
	}
	if v := os.Getenv("NEXTUP_CANVAS_BASE"); v != "" {
		cfg.CanvasBase = v
	}
	if v := os.Getenv("NEXTUP_ACAD_YEAR"); v != "" {
		cfg.AcadYear = v
	}
	if v := os.Getenv("NEXTUP_SEMESTER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 4 {
			cfg.Semester = n
		}
	}
	if v := os.Getenv("NEXTUP_SHARE_LINK"); v != "" {
		cfg.ShareLink = v
	}
	if v := os.Getenv("NEXTUP_CANVAS_TOKEN"); v != "" {
		cfg.CanvasToken = v
	}
	if v := os.Getenv("NEXTUP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("NEXTUP_CACHE_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheTTLHours = n
		}
	}
	return cfg
}
