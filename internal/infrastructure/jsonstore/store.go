package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// database is the on-disk shape of the data file.
type database struct {
	Studios  []domain.Studio       `json:"studios"`
	Bookings []domain.Booking      `json:"bookings"`
	Blocks   []domain.Block        `json:"blocks"`
	Gallery  []domain.GalleryImage `json:"gallery"`
}

// Store owns the JSON data file. It loads the file once at startup, keeps
// the working copy in memory behind a RWMutex, and rewrites the file
// atomically (temp file + rename) on every mutation. The repositories in
// this package all share one Store.
type Store struct {
	path string

	mu   sync.RWMutex
	data database
}

// Open loads the data file at path. A missing file is created (with any
// missing parent directories) and seeded with the starter studios so a
// fresh deployment serves a working catalog; admins edit the file from
// there.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read data file %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		s.data.Studios = seedStudios()
		if err := s.persistLocked(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return s, nil
}

// seedStudios is the starter catalog written into a brand-new data file.
func seedStudios() []domain.Studio {
	return []domain.Studio{
		{
			ID:            "studio-ground",
			Slug:          "ground-floor-studio",
			NameEn:        "Ground Floor Studio",
			NameAr:        "استوديو الطابق الأرضي",
			DescriptionEn: "Furnished studio with a private entrance and a small patio.",
			DescriptionAr: "استوديو مفروش بمدخل خاص وفناء صغير.",
			MonthlyRate:   decimal.NewFromInt(4900),
			YearlyRate:    decimal.NewFromInt(53100),
			AreaSqm:       42,
			Floor:         0,
			Active:        true,
		},
		{
			ID:            "studio-upper",
			Slug:          "upper-floor-studio",
			NameEn:        "Upper Floor Studio",
			NameAr:        "استوديو الطابق العلوي",
			DescriptionEn: "Bright furnished studio with a balcony and city view.",
			DescriptionAr: "استوديو مفروش مشرق مع شرفة وإطلالة على المدينة.",
			MonthlyRate:   decimal.NewFromInt(5400),
			YearlyRate:    decimal.NewFromInt(58500),
			AreaSqm:       46,
			Floor:         1,
			Active:        true,
		},
	}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// persistLocked writes the current database to disk. Callers must hold the
// write lock (or be the only goroutine with access, as in Open).
func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal database: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write temp data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
