// Package catalog holds the static reference data of the resort: guest
// packages, amenities and the room inventory. Everything here is read-only;
// mutable room state lives in the repository layer, seeded from this package.
package catalog

import (
	"errors"

	"backend/internal/model"
)

var ErrPackageNotFound = errors.New("package not found")

// packageOrder fixes the display ordering of the closed package enum.
var packageOrder = []string{
	model.PackageBasic,
	model.PackageFamily,
	model.PackagePremium,
	model.PackageLuxury,
	model.PackageEvent,
}

// PackageFor looks up a package by type. The enum is closed, so a miss means
// the caller passed something that never came from the catalog.
func PackageFor(packageType string) (model.GuestPackage, error) {
	pkg, ok := packages[packageType]
	if !ok {
		return model.GuestPackage{}, ErrPackageNotFound
	}
	return pkg, nil
}

// Packages returns all packages in display order.
func Packages() []model.GuestPackage {
	out := make([]model.GuestPackage, 0, len(packageOrder))
	for _, t := range packageOrder {
		out = append(out, packages[t])
	}
	return out
}

// Amenities returns the full amenity catalog in its reference order.
func Amenities() []model.Amenity {
	out := make([]model.Amenity, len(amenities))
	copy(out, amenities)
	return out
}

// AmenitiesByCategory returns the amenities of one category, catalog order.
func AmenitiesByCategory(category string) []model.Amenity {
	var out []model.Amenity
	for _, a := range amenities {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// AmenitiesWithCharge returns the amenities that carry a per-use price.
func AmenitiesWithCharge() []model.Amenity {
	var out []model.Amenity
	for _, a := range amenities {
		if a.BasePrice.IsPositive() {
			out = append(out, a)
		}
	}
	return out
}

// Rooms returns a fresh copy of the room inventory, suitable for seeding a
// mutable room store.
func Rooms() []model.Room {
	out := make([]model.Room, len(rooms))
	copy(out, rooms)
	return out
}
