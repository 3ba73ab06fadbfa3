//go:build wireinject
// +build wireinject

package listing

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	categorydomain "github.com/unimarket-dev/unimarket/internal/category/domain"
	categoryrepo "github.com/unimarket-dev/unimarket/internal/category/repository"
	"github.com/unimarket-dev/unimarket/internal/httpapi"
	"github.com/unimarket-dev/unimarket/internal/listing/delivery/http"
	"github.com/unimarket-dev/unimarket/internal/listing/domain"
	"github.com/unimarket-dev/unimarket/internal/listing/repository"
	"github.com/unimarket-dev/unimarket/internal/listing/usecase/command"
	"github.com/unimarket-dev/unimarket/internal/listing/usecase/query"
	"github.com/unimarket-dev/unimarket/kafka"
)

// ProvideListingRepository provides the listing repository with tracing
func ProvideListingRepository(db *gorm.DB) domain.ListingRepository {
	return repository.NewGormListingRepositoryWithTracing(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) categorydomain.CategoryRepository {
	return categoryrepo.NewGormCategoryRepository(db)
}

// Command Handlers Providers
func ProvideCreateListingHandler(listings domain.ListingRepository, categories categorydomain.CategoryRepository) *command.CreateListingHandler {
	return command.NewCreateListingHandler(listings, categories)
}

func ProvideUpdateListingHandler(listings domain.ListingRepository, categories categorydomain.CategoryRepository) *command.UpdateListingHandler {
	return command.NewUpdateListingHandler(listings, categories)
}

func ProvideDeleteListingHandler(listings domain.ListingRepository) *command.DeleteListingHandler {
	return command.NewDeleteListingHandler(listings)
}

// Query Handlers Providers
func ProvideSearchListingsHandler(listings domain.ListingRepository) *query.SearchListingsHandler {
	return query.NewSearchListingsHandler(listings)
}

func ProvideGetListingHandler(listings domain.ListingRepository) *query.GetListingHandler {
	return query.NewGetListingHandler(listings)
}

func ProvideListSellerListingsHandler(listings domain.ListingRepository) *query.ListSellerListingsHandler {
	return query.NewListSellerListingsHandler(listings)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideListingRepository,
	ProvideCategoryRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateListingHandler,
	ProvideUpdateListingHandler,
	ProvideDeleteListingHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideSearchListingsHandler,
	ProvideGetListingHandler,
	ProvideListSellerListingsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the listing HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, gate *httpapi.Auth, cache *httpapi.Cache, publisher *kafka.Publisher) (*http.ListingHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewListingHandlerWithDI,
	)
	return nil, nil
}
