package catalog

import (
	"github.com/horizontravels/booking/internal/domain"
)

// CatalogUseCase exposes the read-only reference data the storefront sells.
type CatalogUseCase interface {
	Destinations() []domain.Destination
	Rentals() []domain.CarRental
	Tours() []domain.Tour
	Guides() []domain.TravelGuide
	Resolve(kind domain.ItemKind, id int64) (domain.Item, bool)
}

// Catalog holds the static storefront data. It is built once at startup and
// never mutated, so reads need no locking.
type Catalog struct {
	destinations []domain.Destination
	rentals      []domain.CarRental
	tours        []domain.Tour
	guides       []domain.TravelGuide
}

func NewCatalog() *Catalog {
	return &Catalog{
		destinations: defaultDestinations(),
		rentals:      defaultRentals(),
		tours:        defaultTours(),
		guides:       defaultGuides(),
	}
}

func (c *Catalog) Destinations() []domain.Destination {
	out := make([]domain.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

func (c *Catalog) Rentals() []domain.CarRental {
	out := make([]domain.CarRental, len(c.rentals))
	copy(out, c.rentals)
	return out
}

func (c *Catalog) Tours() []domain.Tour {
	out := make([]domain.Tour, len(c.tours))
	copy(out, c.tours)
	return out
}

func (c *Catalog) Guides() []domain.TravelGuide {
	out := make([]domain.TravelGuide, len(c.guides))
	copy(out, c.guides)
	return out
}

// Resolve projects the catalog entry matching kind and id onto the common
// item shape the booking flow works with.
func (c *Catalog) Resolve(kind domain.ItemKind, id int64) (domain.Item, bool) {
	switch kind {
	case domain.ItemKindDestination:
		for _, d := range c.destinations {
			if d.ID == id {
				return d.Item(), true
			}
		}
	case domain.ItemKindRental:
		for _, r := range c.rentals {
			if r.ID == id {
				return r.Item(), true
			}
		}
	case domain.ItemKindTour:
		for _, t := range c.tours {
			if t.ID == id {
				return t.Item(), true
			}
		}
	}
	return domain.Item{}, false
}

var _ CatalogUseCase = (*Catalog)(nil)
