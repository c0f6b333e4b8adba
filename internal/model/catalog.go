package model

import "github.com/shopspring/decimal"

// PackageType enum constants
const (
	PackageBasic   = "BASIC"
	PackageFamily  = "FAMILY"
	PackagePremium = "PREMIUM"
	PackageLuxury  = "LUXURY"
	PackageEvent   = "EVENT"
)

// AmenityCategory enum constants
const (
	AmenityFun      = "FUN"
	AmenityFood     = "FOOD"
	AmenityWellness = "WELLNESS"
	AmenityFacility = "FACILITY"
	AmenitySports   = "SPORTS"
	AmenitySafety   = "SAFETY"
)

// GuestPackage is a static catalog entry. Price is the gross, guest-facing
// entry fee inclusive of both tax components.
type GuestPackage struct {
	Type      string          `json:"type"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Amenities []string        `json:"amenities"` // included amenity display names, ordered
	Color     string          `json:"color"`     // display style hint for clients
}

// LocalizedText carries the bilingual label pair shown to guests.
type LocalizedText struct {
	EN string `json:"en"`
	TA string `json:"ta"`
}

// Amenity is a static catalog entry. BasePrice zero means the amenity is free
// of charge (or only available bundled in a package).
type Amenity struct {
	ID          string          `json:"id"`
	Name        LocalizedText   `json:"name"`
	Icon        string          `json:"icon"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Category    string          `json:"category"` // FUN, FOOD, WELLNESS, FACILITY, SPORTS, SAFETY
	IncludedIn  []string        `json:"included_in"`
	Description *LocalizedText  `json:"description,omitempty"`
	Rules       []string        `json:"rules,omitempty"`
}
