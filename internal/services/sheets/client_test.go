package sheets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mealbot/internal/recipe"
	"mealbot/internal/services/sheets"
)

func sampleRecords() []recipe.Record {
	return []recipe.Record{
		{
			Title:       "Weeknight Chicken",
			Ingredients: []string{"1 lb chicken thighs", "2 cloves garlic"},
			Directions:  []string{"Sear the chicken.", "Add garlic and finish."},
			Rating:      recipe.Float64(4.5),
			Calories:    recipe.Float64(520),
			Categories:  []string{"Chicken", "Dinner"},
		},
	}
}

func TestWriteSelectionClearsThenUpdates(t *testing.T) {
	t.Parallel()

	var calls []string
	var update struct {
		Range          string     `json:"range"`
		MajorDimension string     `json:"majorDimension"`
		Values         [][]string `json:"values"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if strings.Contains(r.URL.Path, "A1") {
			if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
				t.Errorf("decode update body: %v", err)
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := sheets.NewClient("sheet-id", "token-123", sheets.WithBaseURL(server.URL))
	if err := client.WriteSelection(context.Background(), sampleRecords()); err != nil {
		t.Fatalf("WriteSelection: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("expected clear then update, got %v", calls)
	}
	if !strings.Contains(calls[0], ":clear") {
		t.Fatalf("expected first call to clear, got %q", calls[0])
	}
	if update.MajorDimension != "ROWS" {
		t.Fatalf("expected ROWS major dimension, got %q", update.MajorDimension)
	}
	if len(update.Values) != 2 {
		t.Fatalf("expected header plus one recipe row, got %d rows", len(update.Values))
	}
	if update.Values[0][0] != "Title" {
		t.Fatalf("expected header row first, got %v", update.Values[0])
	}
	if update.Values[1][0] != "Weeknight Chicken" {
		t.Fatalf("expected recipe row, got %v", update.Values[1])
	}
}

func TestWriteSelectionSurfacesHTTPErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := sheets.NewClient("sheet-id", "token-123", sheets.WithBaseURL(server.URL))
	err := client.WriteSelection(context.Background(), sampleRecords())
	if err == nil {
		t.Fatal("expected error from 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestWriteSelectionRequiresRecords(t *testing.T) {
	t.Parallel()

	client := sheets.NewClient("sheet-id", "token-123")
	if err := client.WriteSelection(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty selection")
	}
}

func TestBuildRowsFormatsOptionalFields(t *testing.T) {
	t.Parallel()

	records := []recipe.Record{
		{
			Title:       "Mystery Stew",
			Ingredients: []string{"beef", "carrots"},
			Directions:  nil,
			Categories:  []string{"Beef"},
		},
	}
	rows := sheets.BuildRows(records)
	row := rows[1]
	if row[2] != "N/A" || row[3] != "N/A" {
		t.Fatalf("expected N/A for missing rating and calories, got %q / %q", row[2], row[3])
	}
	if row[5] != "See recipe source" {
		t.Fatalf("expected directions fallback, got %q", row[5])
	}
	if row[1] != "• beef\n• carrots" {
		t.Fatalf("unexpected ingredient formatting: %q", row[1])
	}
}
