package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/pkg/errs"
	"shipmate/internal/pkg/guard"
)

// MaxCityNameLength bounds source and destination city names.
const MaxCityNameLength = 100

var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute constructor")

// Route is where a parcel travels from and to. The distance between the two points is
// computed once at construction.
type Route struct {
	sourceCity string
	destCity   string
	source     kernel.Location
	dest       kernel.Location
	distanceKm float64
	guard      guard.ConstructorGuard
}

func NewRoute(sourceCity, destCity string, source, dest kernel.Location) (Route, error) {
	r := Route{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setSourceCity(sourceCity),
		r.setDestCity(destCity),
		source.Validate(),
		dest.Validate(),
	); err != nil {
		return Route{}, err
	}

	distance, err := source.DistanceKm(dest)
	if err != nil {
		return Route{}, err
	}

	r.source = source
	r.dest = dest
	r.distanceKm = distance
	return r, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) SourceCity() string {
	return r.sourceCity
}

func (r Route) DestCity() string {
	return r.destCity
}

func (r Route) Source() kernel.Location {
	return r.source
}

func (r Route) Dest() kernel.Location {
	return r.dest
}

// DistanceKm is the great-circle distance between Source and Dest.
func (r Route) DistanceKm() float64 {
	return r.distanceKm
}

func (r *Route) setSourceCity(city string) error {
	city, err := NormalizeCity("source_city", city)
	if err != nil {
		return err
	}
	r.sourceCity = city
	return nil
}

func (r *Route) setDestCity(city string) error {
	city, err := NormalizeCity("dest_city", city)
	if err != nil {
		return err
	}
	r.destCity = city
	return nil
}

// NormalizeCity trims a city name and checks its length. Traveller profiles use it
// too, so both sides of a match compare cities the same way.
func NormalizeCity(paramName, city string) (string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(city); n > MaxCityNameLength {
		return "", errs.NewValueIsOutOfRangeErrorWithCause(paramName, n, 1, MaxCityNameLength,
			fmt.Errorf("city name is %d characters long", n))
	}
	return city, nil
}
