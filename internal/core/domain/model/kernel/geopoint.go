package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"foodshare/internal/pkg/errs"
)

const (
	// FallbackLatitude is the latitude of the fixed point used when a stored
	// record carries malformed coordinates.
	FallbackLatitude = 4.8133
	// FallbackLongitude is the longitude of the fixed fallback point.
	FallbackLongitude = -75.6961
	// FallbackJitterSpan is the total width of the random offset applied
	// around the fallback point, so normalized points land within
	// ±FallbackJitterSpan/2 of it on each axis.
	FallbackJitterSpan = 0.02
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint. GeoPoints must be created using the
// NewGeoPoint or NormalizeGeoPoint constructors.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or NormalizeGeoPoint constructors")

// GeoPoint represents a pickup position as a validated latitude/longitude
// pair. It is an immutable value object: coordinates are finite, non-zero,
// and rounded to six decimal places. The zero value is invalid and fails
// validation; use the constructors.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(4.81, -75.69)
//	if err != nil {
//	    // coordinates were missing or malformed
//	}
type GeoPoint struct {
	latitude  float64
	longitude float64

	isConstructed bool
}

// NewGeoPoint creates a GeoPoint from raw coordinates. Both values must be
// finite and non-zero; a zero coordinate is indistinguishable from an
// unset one in the data this system ingests, so it is rejected rather than
// silently accepted.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	if err := errors.Join(
		validateCoordinate("latitude", latitude),
		validateCoordinate("longitude", longitude),
	); err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{
		latitude:      roundCoordinate(latitude),
		longitude:     roundCoordinate(longitude),
		isConstructed: true,
	}, nil
}

// NormalizeGeoPoint is the read-time normalization policy for stored
// coordinates: a well-formed pair is returned as-is (rounded), while a
// malformed pair (non-finite or zero on either axis) is replaced by a small
// random jitter around the fixed fallback point. The jittered value is a
// display patch for legacy bad rows and must never be written back over
// stored data.
func NormalizeGeoPoint(latitude float64, longitude float64) GeoPoint {
	point, err := NewGeoPoint(latitude, longitude)
	if err == nil {
		return point
	}

	return GeoPoint{
		latitude:      roundCoordinate(FallbackLatitude + (rand.Float64()-0.5)*FallbackJitterSpan), //nolint:gosec // display jitter, not security sensitive
		longitude:     roundCoordinate(FallbackLongitude + (rand.Float64()-0.5)*FallbackJitterSpan), //nolint:gosec // display jitter, not security sensitive
		isConstructed: true,
	}
}

// Latitude returns the latitude, rounded to six decimal places.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude, rounded to six decimal places.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Validate checks that the GeoPoint was created through a constructor.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}

// IsEqual reports whether two points carry the same rounded coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("Lat: %.6f, Lng: %.6f", p.latitude, p.longitude)
}

func validateCoordinate(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value == 0 {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func roundCoordinate(value float64) float64 {
	return math.Round(value*1e6) / 1e6
}
