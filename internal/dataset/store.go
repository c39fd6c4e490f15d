package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"mealbot/internal/fileutil"
	"mealbot/internal/recipe"
	"mealbot/internal/services"
)

// Load reads a JSON array of recipe records from path. A missing file,
// invalid JSON, or a record missing a mandatory field fails the load with
// an error marked services.ErrDataLoad.
func Load(path string) ([]recipe.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrDataLoad, "dataset", "read", path, err)
	}

	var records []recipe.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, services.Wrap(services.ErrDataLoad, "dataset", "parse", path, err)
	}

	for i, record := range records {
		if err := validateRecord(record); err != nil {
			return nil, services.Wrap(services.ErrDataLoad, "dataset", "validate",
				fmt.Sprintf("record %d (%q)", i, record.Title), err)
		}
	}

	return records, nil
}

// LoadRaw reads a JSON array of recipe records without per-record
// validation. The raw 20k-recipe corpus contains entries with missing
// fields; the curation pipeline is responsible for discarding those.
func LoadRaw(path string) ([]recipe.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrDataLoad, "dataset", "read", path, err)
	}

	var records []recipe.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, services.Wrap(services.ErrDataLoad, "dataset", "parse", path, err)
	}
	return records, nil
}

// Save persists records as a JSON array at path, atomically replacing any
// previous file.
func Save(path string, records []recipe.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	data = append(data, '\n')
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return nil
}

func validateRecord(record recipe.Record) error {
	if record.Title == "" {
		return fmt.Errorf("missing title")
	}
	if len(record.Ingredients) == 0 {
		return fmt.Errorf("missing ingredients")
	}
	if len(record.Directions) == 0 {
		return fmt.Errorf("missing directions")
	}
	if record.Rating == nil {
		return fmt.Errorf("missing rating")
	}
	if *record.Rating < 0 || *record.Rating > 5 {
		return fmt.Errorf("rating %v out of range [0,5]", *record.Rating)
	}
	return nil
}
