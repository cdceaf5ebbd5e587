package usecases

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	"github.com/LancemDev/greenconnect-test/internal/domain/repositories"
	"github.com/LancemDev/greenconnect-test/pkg/cache"
	"github.com/LancemDev/greenconnect-test/pkg/logger"
)

const listingsKey = "listings"

// cached page of marketplace listings
type listingPage struct {
	Listings []*entities.CreditListing `json:"listings"`
	Total    int                       `json:"total"`
}

// MarketplaceUsecase serves the public credit listings, cache-aside over the
// credit repository.
type MarketplaceUsecase struct {
	creditRepo repositories.CreditRepository
	store      *cache.Store
}

// NewMarketplaceUsecase creates a new marketplace usecase. store may be nil,
// in which case every read goes to the database.
func NewMarketplaceUsecase(creditRepo repositories.CreditRepository, store *cache.Store) *MarketplaceUsecase {
	return &MarketplaceUsecase{
		creditRepo: creditRepo,
		store:      store,
	}
}

// ListAvailable returns available credit lots enriched with project and
// seller details, newest first. Only the unpaginated listing is cached so
// a single invalidation key covers it.
func (u *MarketplaceUsecase) ListAvailable(ctx context.Context, limit, offset int) ([]*entities.CreditListing, int, error) {
	cacheable := limit == 0 && offset == 0

	if cacheable {
		var page listingPage
		err := u.store.GetJSON(ctx, listingsKey, &page)
		if err == nil {
			return page.Listings, page.Total, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warn(ctx, "listing cache read failed", zap.Error(err))
		}
	}

	listings, total, err := u.creditRepo.ListAvailable(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		if err := u.store.SetJSON(ctx, listingsKey, listingPage{Listings: listings, Total: total}); err != nil {
			logger.Warn(ctx, "listing cache write failed", zap.Error(err))
		}
	}

	return listings, total, nil
}

// InvalidateListings drops cached listing pages after a purchase or issuance
func (u *MarketplaceUsecase) InvalidateListings(ctx context.Context) {
	if err := u.store.Invalidate(ctx, listingsKey); err != nil {
		logger.Warn(ctx, "listing cache invalidation failed", zap.Error(err))
	}
}
