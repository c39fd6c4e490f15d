package gdocs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mealbot/internal/recipe"
	"mealbot/internal/services/gdocs"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
}

func sampleRecords() []recipe.Record {
	return []recipe.Record{
		{
			Title:       "Weeknight Chicken",
			Ingredients: []string{"1 lb chicken thighs", "2 cloves garlic"},
			Directions:  []string{"Sear the chicken.", "Add garlic and finish."},
			Rating:      recipe.Float64(4.5),
			Protein:     recipe.Float64(38),
		},
	}
}

func TestCreateMealPlanCreatesAndPopulatesDocument(t *testing.T) {
	t.Parallel()

	var createTitle string
	var updatePath string
	var updateBody struct {
		Requests []struct {
			InsertText struct {
				Location struct {
					Index int `json:"index"`
				} `json:"location"`
				Text string `json:"text"`
			} `json:"insertText"`
		} `json:"requests"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/documents":
			var body struct {
				Title string `json:"title"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode create body: %v", err)
			}
			createTitle = body.Title
			_ = json.NewEncoder(w).Encode(map[string]string{"documentId": "doc-42"})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
			updatePath = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&updateBody); err != nil {
				t.Errorf("decode update body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := gdocs.NewClient("token-123",
		gdocs.WithBaseURL(server.URL),
		gdocs.WithClock(fixedClock),
	)
	docURL, err := client.CreateMealPlan(context.Background(), sampleRecords())
	if err != nil {
		t.Fatalf("CreateMealPlan: %v", err)
	}

	if createTitle != "Meal Plan - March 14, 2026" {
		t.Fatalf("unexpected document title %q", createTitle)
	}
	if !strings.Contains(updatePath, "doc-42") {
		t.Fatalf("expected batch update against created doc, got %q", updatePath)
	}
	if docURL != "https://docs.google.com/document/d/doc-42/edit" {
		t.Fatalf("unexpected doc url %q", docURL)
	}

	if len(updateBody.Requests) != 2 {
		t.Fatalf("expected heading plus one recipe insert, got %d", len(updateBody.Requests))
	}
	heading := updateBody.Requests[0].InsertText
	if heading.Location.Index != 1 || !strings.HasPrefix(heading.Text, "Meal Plan\n") {
		t.Fatalf("unexpected heading insert: index=%d text=%q", heading.Location.Index, heading.Text)
	}
	block := updateBody.Requests[1].InsertText
	if block.Location.Index != 1+len([]rune(heading.Text)) {
		t.Fatalf("expected recipe insert after heading, got index %d", block.Location.Index)
	}
	if !strings.Contains(block.Text, "RECIPE 1: WEEKNIGHT CHICKEN") {
		t.Fatalf("expected recipe header in block, got %q", block.Text)
	}
	if !strings.Contains(block.Text, "☐ 1 lb chicken thighs") {
		t.Fatalf("expected shopping list entry, got %q", block.Text)
	}
	if !strings.Contains(block.Text, "38g protein") || !strings.Contains(block.Text, "4.5 stars") {
		t.Fatalf("expected nutrition line, got %q", block.Text)
	}
}

func TestCreateMealPlanSurfacesCreateFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := gdocs.NewClient("token-123", gdocs.WithBaseURL(server.URL))
	if _, err := client.CreateMealPlan(context.Background(), sampleRecords()); err == nil {
		t.Fatal("expected error from 403 response")
	}
}

func TestCreateMealPlanRequiresRecords(t *testing.T) {
	t.Parallel()

	client := gdocs.NewClient("token-123")
	if _, err := client.CreateMealPlan(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty selection")
	}
}
