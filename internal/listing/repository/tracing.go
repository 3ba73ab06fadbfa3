package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/unimarket-dev/unimarket/internal/listing/domain"
)

var tracer = otel.Tracer("listing-repository")

// GormListingRepositoryWithTracing wraps GormListingRepository with
// tracing spans around the hot catalog paths. It satisfies
// domain.ListingRepository, so it can be swapped in transparently.
type GormListingRepositoryWithTracing struct {
	*GormListingRepository
}

// NewGormListingRepositoryWithTracing creates a new repository with tracing
func NewGormListingRepositoryWithTracing(db *gorm.DB) *GormListingRepositoryWithTracing {
	return &GormListingRepositoryWithTracing{
		GormListingRepository: NewGormListingRepository(db),
	}
}

// Search with tracing
func (r *GormListingRepositoryWithTracing) Search(filter domain.SearchFilter) ([]domain.Listing, error) {
	_, span := tracer.Start(context.Background(), "repository.Search",
		trace.WithAttributes(
			attribute.String("listing.status", filter.Status),
			attribute.String("listing.sort", filter.SortBy),
			attribute.Int("listing.limit", filter.Limit),
		),
	)
	defer span.End()

	listings, err := r.GormListingRepository.Search(filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("listing.results", len(listings)))
	return listings, nil
}

// FindByID with tracing
func (r *GormListingRepositoryWithTracing) FindByID(id uint) (*domain.Listing, error) {
	_, span := tracer.Start(context.Background(), "repository.FindByID",
		trace.WithAttributes(attribute.Int("listing.id", int(id))),
	)
	defer span.End()

	listing, err := r.GormListingRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return listing, nil
}

// IncrementViews with tracing
func (r *GormListingRepositoryWithTracing) IncrementViews(id uint) error {
	_, span := tracer.Start(context.Background(), "repository.IncrementViews",
		trace.WithAttributes(attribute.Int("listing.id", int(id))),
	)
	defer span.End()

	if err := r.GormListingRepository.IncrementViews(id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
