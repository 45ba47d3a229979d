// Package dataset builds the mock campus the session runs against: a
// building catalog loaded from CSV and seeded random schedules for every
// room. Generation is deterministic for a given seed.
package dataset

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// BuildingRecord is one row of the building catalog CSV.
type BuildingRecord struct {
	ID   string `csv:"id"`
	Name string `csv:"name"`
	Code string `csv:"code"`
}

// LoadCatalog reads and parses the building catalog CSV file.
func LoadCatalog(path string) ([]*BuildingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var records []*BuildingRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return records, nil
}

// DefaultCatalog is the department's building list, used when no catalog
// file is configured.
func DefaultCatalog() []*BuildingRecord {
	return []*BuildingRecord{
		{ID: "1", Name: "Edificio M", Code: "M"},
		{ID: "2", Name: "Edificio R", Code: "R"},
		{ID: "3", Name: "Edificio C", Code: "C"},
		{ID: "4", Name: "Edificio B", Code: "B"},
		{ID: "5", Name: "Edificio F", Code: "F"},
		{ID: "6", Name: "Edificio E", Code: "E"},
		{ID: "7", Name: "Edificio D", Code: "D"},
		{ID: "8", Name: "Edificio A", Code: "A"},
		{ID: "9", Name: "Edificio U", Code: "U"},
	}
}
