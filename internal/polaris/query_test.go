package polaris

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	clierrors "github.com/salmonumbrella/polaris-cli/internal/errors"
)

func TestSQLRejectsBlankStatement(t *testing.T) {
	c := NewClient("testorg", "id", "secret")
	_, err := c.SQL(context.Background(), "   ")
	if !clierrors.IsValidationError(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestSQLInfersProjectAndPostsQuery(t *testing.T) {
	var gotBody map[string]any
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects":
			_ = json.NewEncoder(w).Encode(map[string]any{"values": []map[string]any{
				project("default", "p1"),
			}})
		case "/projects/p1/query/sql":
			if r.Method != http.MethodPost {
				t.Errorf("method = %q", r.Method)
			}
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"channel": "#en.wikipedia", "edits": float64(33)},
			})
		default:
			http.NotFound(w, r)
		}
	})
	c := newTestClient(ts)

	rows, err := c.SQL(context.Background(), "SELECT channel FROM wikipedia")
	if err != nil {
		t.Fatalf("SQL() error: %v", err)
	}
	if gotBody["query"] != "SELECT channel FROM wikipedia" {
		t.Errorf("request body = %v", gotBody)
	}
	if len(rows) != 1 || rows[0]["channel"] != "#en.wikipedia" {
		t.Errorf("rows = %v", rows)
	}
}

func TestSQLReusesSelectedProject(t *testing.T) {
	var projectLookups int
	ts := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects":
			projectLookups++
			_ = json.NewEncoder(w).Encode(map[string]any{"values": []map[string]any{
				project("reporting", "p7"),
			}})
		case "/projects/p7/query/sql":
			_ = json.NewEncoder(w).Encode([]map[string]any{})
		default:
			http.NotFound(w, r)
		}
	})
	c := newTestClient(ts)
	ctx := context.Background()

	if err := c.SetProject(ctx, "reporting"); err != nil {
		t.Fatalf("SetProject() error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := c.SQL(ctx, "SELECT 1"); err != nil {
			t.Fatalf("SQL() error: %v", err)
		}
	}
	if projectLookups != 1 {
		t.Errorf("project lookups = %d, want 1 (from SetProject only)", projectLookups)
	}
}
