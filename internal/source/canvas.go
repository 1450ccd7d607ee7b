package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexanderramin/nextup/internal/domain"
)

// CanvasClient fetches the student's todo list from the Canvas LMS API.
type CanvasClient struct {
	base  string
	httpc *http.Client
}

// NewCanvasClient creates a client against cfg's endpoint and timeout.
func NewCanvasClient(cfg Config) *CanvasClient {
	return &CanvasClient{
		base:  cfg.CanvasBase,
		httpc: &http.Client{Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond},
	}
}

// canvasTodoItem mirrors the fields of /api/v1/users/self/todo entries the
// planner cares about. Canvas nests assignment details inconsistently, so
// both top-level and nested fields are read with the nested ones preferred.
type canvasTodoItem struct {
	Title       string `json:"title"`
	ContextName string `json:"context_name"`
	DueAt       string `json:"due_at"`
	HTMLURL     string `json:"html_url"`
	Course      *struct {
		Name string `json:"name"`
	} `json:"course"`
	Assignment *struct {
		Name    string `json:"name"`
		DueAt   string `json:"due_at"`
		HTMLURL string `json:"html_url"`
	} `json:"assignment"`
}

// FetchTodos returns the student's assignment records. An empty token yields
// an empty list without a network call; HTTP failures return an error the
// caller downgrades to an empty pool.
func (c *CanvasClient) FetchTodos(ctx context.Context, token string) ([]domain.Assignment, error) {
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/v1/users/self/todo", nil)
	if err != nil {
		return nil, fmt.Errorf("building canvas request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching canvas todos: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("canvas token invalid or canvas unavailable: status %d", resp.StatusCode)
	}

	var items []canvasTodoItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding canvas todos: %w", err)
	}

	assignments := make([]domain.Assignment, 0, len(items))
	for _, item := range items {
		assignments = append(assignments, item.assignment())
	}
	return assignments, nil
}

func (item canvasTodoItem) assignment() domain.Assignment {
	a := domain.Assignment{
		Title:  item.Title,
		Course: item.ContextName,
		Link:   item.HTMLURL,
	}
	dueAt := item.DueAt
	if item.Assignment != nil {
		if item.Assignment.Name != "" {
			a.Title = item.Assignment.Name
		}
		if item.Assignment.DueAt != "" {
			dueAt = item.Assignment.DueAt
		}
		if item.Assignment.HTMLURL != "" {
			a.Link = item.Assignment.HTMLURL
		}
	}
	if item.Course != nil && item.Course.Name != "" {
		a.Course = item.Course.Name
	}
	if a.Title == "" {
		a.Title = "Untitled Task"
	}
	if a.Course == "" {
		a.Course = "Unknown Course"
	}
	if t, err := time.Parse(time.RFC3339, dueAt); err == nil {
		a.DueAt = &t
	}
	return a
}
