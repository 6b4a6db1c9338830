package domain

import "github.com/shopspring/decimal"

// Studio represents a rentable unit. Names and descriptions are carried in
// both site languages.
type Studio struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	NameEn        string          `json:"nameEn"`
	NameAr        string          `json:"nameAr"`
	DescriptionEn string          `json:"descriptionEn,omitempty"`
	DescriptionAr string          `json:"descriptionAr,omitempty"`
	MonthlyRate   decimal.Decimal `json:"monthlyRate"`
	YearlyRate    decimal.Decimal `json:"yearlyRate"`
	AreaSqm       float64         `json:"areaSqm,omitempty"`
	Floor         int             `json:"floor,omitempty"`
	Active        bool            `json:"active"`
	Photos        []string        `json:"photos,omitempty"`
}

// StudioRepository defines the interface for studio data operations.
type StudioRepository interface {
	GetAllStudios() ([]Studio, error)
	GetStudioByID(id string) (*Studio, error)
	GetStudioBySlug(slug string) (*Studio, error)
	AddStudioPhoto(id, url string) error
}
