package store

import (
	"context"
	"errors"

	"voyago/models"
)

// ErrNotFound is returned by lookups when no document matches.
var ErrNotFound = errors.New("not found")

// UserStore is the document-store seam the booking service and the
// reconciliation sweep share. Save rewrites the whole user document.
type UserStore interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

// CatalogStore resolves destination, hotel and package references.
type CatalogStore interface {
	Destinations(ctx context.Context) ([]models.Destination, error)
	DestinationByReference(ctx context.Context, ref string) (*models.Destination, error)
	DestinationsByReferences(ctx context.Context, refs []string) ([]models.Destination, error)
	Hotels(ctx context.Context) ([]models.Hotel, error)
	HotelByReference(ctx context.Context, ref string) (*models.Hotel, error)
	Packages(ctx context.Context) ([]models.TravelPackage, error)
	PackageByReference(ctx context.Context, ref string) (*models.TravelPackage, error)
}
