package catalog

import (
	"testing"

	"backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageFor(t *testing.T) {
	tests := []struct {
		name        string
		packageType string
		wantPrice   string
		wantErr     bool
	}{
		{name: "basic", packageType: model.PackageBasic, wantPrice: "499"},
		{name: "family", packageType: model.PackageFamily, wantPrice: "999"},
		{name: "premium", packageType: model.PackagePremium, wantPrice: "1499"},
		{name: "luxury", packageType: model.PackageLuxury, wantPrice: "2499"},
		{name: "event", packageType: model.PackageEvent, wantPrice: "5000"},
		{name: "unknown", packageType: "PLATINUM", wantErr: true},
		{name: "empty", packageType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := PackageFor(tt.packageType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPackageNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.packageType, pkg.Type)
			assert.Equal(t, tt.wantPrice, pkg.Price.String())
		})
	}
}

func TestPackagesOrder(t *testing.T) {
	pkgs := Packages()
	require.Len(t, pkgs, 5)

	// Cheapest to most expensive, matching the front-desk display order.
	for i := 1; i < len(pkgs); i++ {
		assert.True(t, pkgs[i].Price.GreaterThan(pkgs[i-1].Price),
			"%s should cost more than %s", pkgs[i].Type, pkgs[i-1].Type)
	}
}

func TestAmenitiesByCategory(t *testing.T) {
	wellness := AmenitiesByCategory(model.AmenityWellness)
	require.NotEmpty(t, wellness)
	for _, a := range wellness {
		assert.Equal(t, model.AmenityWellness, a.Category)
	}

	assert.Empty(t, AmenitiesByCategory("NOPE"))
}

func TestAmenitiesWithCharge(t *testing.T) {
	charged := AmenitiesWithCharge()
	require.NotEmpty(t, charged)
	for _, a := range charged {
		assert.True(t, a.BasePrice.IsPositive(), "%s has no charge", a.Name.EN)
	}
	assert.Less(t, len(charged), len(Amenities()), "free amenities must be filtered out")
}

func TestAmenitiesHaveBilingualNames(t *testing.T) {
	for _, a := range Amenities() {
		assert.NotEmpty(t, a.Name.EN, "amenity %s missing English name", a.ID)
		assert.NotEmpty(t, a.Name.TA, "amenity %s missing Tamil name", a.ID)
	}
}

func TestRoomsReturnsCopy(t *testing.T) {
	first := Rooms()
	first[0].Status = model.RoomOccupied

	again := Rooms()
	assert.Equal(t, model.RoomAvailable, again[0].Status,
		"mutating a returned slice must not touch the reference inventory")
}

func TestRoomsInventory(t *testing.T) {
	rs := Rooms()
	require.Len(t, rs, 8)

	byNumber := make(map[string]model.Room, len(rs))
	for _, r := range rs {
		byNumber[r.Number] = r
	}
	assert.Equal(t, model.RoomCleaning, byNumber["103"].Status)
	assert.Equal(t, model.RoomAvailable, byNumber["101"].Status)
}
