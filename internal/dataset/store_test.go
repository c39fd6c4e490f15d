package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mealbot/internal/dataset"
	"mealbot/internal/recipe"
	"mealbot/internal/services"
)

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoadMissingFileIsDataLoadError(t *testing.T) {
	t.Parallel()

	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, services.ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
}

func TestLoadMalformedJSONIsDataLoadError(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, `{"not": "an array"`)
	_, err := dataset.Load(path)
	if !errors.Is(err, services.ErrDataLoad) {
		t.Fatalf("expected ErrDataLoad, got %v", err)
	}
}

func TestLoadRejectsRecordMissingMandatoryFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing title",
			body: `[{"ingredients":["a"],"directions":["b"],"rating":4.0}]`,
		},
		{
			name: "missing ingredients",
			body: `[{"title":"T","directions":["b"],"rating":4.0}]`,
		},
		{
			name: "missing directions",
			body: `[{"title":"T","ingredients":["a"],"rating":4.0}]`,
		},
		{
			name: "missing rating",
			body: `[{"title":"T","ingredients":["a"],"directions":["b"]}]`,
		},
		{
			name: "rating out of range",
			body: `[{"title":"T","ingredients":["a"],"directions":["b"],"rating":7.5}]`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeDataset(t, tc.body)
			if _, err := dataset.Load(path); !errors.Is(err, services.ErrDataLoad) {
				t.Fatalf("expected ErrDataLoad, got %v", err)
			}
		})
	}
}

func TestLoadRawToleratesIncompleteRecords(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, `[{"title":"Toast"},{"title":"Soup","ingredients":["water"],"directions":["boil"],"rating":4.0}]`)
	records, err := dataset.LoadRaw(path)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	records := []recipe.Record{
		{
			Title:         "Grilled Chicken Thighs",
			Ingredients:   []string{"chicken thighs", "olive oil", "salt"},
			Directions:    []string{"Season.", "Grill until done."},
			Rating:        recipe.Float64(4.4),
			Calories:      recipe.Float64(420),
			Protein:       recipe.Float64(38),
			Categories:    []string{"Chicken", "Dinner"},
			ProteinSource: recipe.ProteinChicken,
			MealType:      "entree",
			Difficulty:    recipe.DifficultyEasy,
		},
		{
			Title:       "Beef Stew",
			Ingredients: []string{"beef chuck", "carrots", "onion", "stock"},
			Directions:  []string{"Brown beef.", "Simmer 2 hours."},
			Rating:      recipe.Float64(4.0),
			Categories:  []string{"Beef", "Stew"},
		},
	}

	path := filepath.Join(t.TempDir(), "curated.json")
	if err := dataset.Save(path, records); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i].Title != records[i].Title {
			t.Fatalf("record %d: title %q != %q", i, loaded[i].Title, records[i].Title)
		}
		if !reflect.DeepEqual(loaded[i].Ingredients, records[i].Ingredients) {
			t.Fatalf("record %d: ingredients changed across round trip", i)
		}
		if !reflect.DeepEqual(loaded[i].Directions, records[i].Directions) {
			t.Fatalf("record %d: directions changed across round trip", i)
		}
		if *loaded[i].Rating != *records[i].Rating {
			t.Fatalf("record %d: rating changed across round trip", i)
		}
		if loaded[i].ProteinSource != records[i].ProteinSource {
			t.Fatalf("record %d: protein source changed across round trip", i)
		}
	}

	// Optional absent fields stay absent.
	if loaded[1].Protein != nil {
		t.Fatalf("expected absent protein to stay nil, got %v", *loaded[1].Protein)
	}
}
