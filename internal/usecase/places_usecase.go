package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/pkg/errors"
	"github.com/Takahiruma/lejapong/internal/pkg/slug"
	"github.com/Takahiruma/lejapong/internal/usecase/dto"
)

// PlacesUseCase serves browse, detail and filter-option queries over the
// catalog datasets.
type PlacesUseCase struct {
	catalog *CatalogUseCase
	logger  *zap.Logger
}

// NewPlacesUseCase creates a new PlacesUseCase.
func NewPlacesUseCase(catalog *CatalogUseCase, logger *zap.Logger) *PlacesUseCase {
	return &PlacesUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// List evaluates the filters against the dataset of the requested language.
// An unavailable dataset renders as an empty result, not an error: browsing
// stays up with whatever is loaded.
func (uc *PlacesUseCase) List(ctx context.Context, req dto.ListPlacesRequest) (*dto.PlaceListResponse, error) {
	places, err := uc.load(ctx, domain.Language(req.Language))
	if err != nil {
		return nil, err
	}

	filtered := FilterPlaces(places, Filter{
		Query:        req.Query,
		City:         req.City,
		District:     req.District,
		ActivityType: req.ActivityType,
	})

	return &dto.PlaceListResponse{
		Places: dto.ConvertPlaces(filtered),
		Total:  len(filtered),
	}, nil
}

// Get resolves a detail lookup: the URL-decoded route segment is normalized
// with the same slug function used at ingestion and matched against each
// record's normalized name, first match wins.
func (uc *PlacesUseCase) Get(ctx context.Context, lang domain.Language, rawSlug string) (*dto.PlaceResponse, error) {
	places, err := uc.load(ctx, lang)
	if err != nil {
		return nil, err
	}

	target := slug.Make(rawSlug)
	if target == "" {
		return nil, errors.ErrPlaceNotFound
	}

	for _, p := range places {
		if slug.Make(p.Name) == target {
			resp := dto.ConvertPlace(p)
			return &resp, nil
		}
	}

	return nil, errors.ErrPlaceNotFound
}

// FilterOptions computes the selectable values per dimension; districts are
// conditioned by the city filter, cities and activity types never are.
func (uc *PlacesUseCase) FilterOptions(ctx context.Context, req dto.FilterOptionsRequest) (*dto.FilterOptionsResponse, error) {
	places, err := uc.load(ctx, domain.Language(req.Language))
	if err != nil {
		return nil, err
	}

	return &dto.FilterOptionsResponse{
		Cities:        AvailableCities(places),
		Districts:     AvailableDistricts(places, req.City),
		ActivityTypes: AvailableActivityTypes(places),
	}, nil
}

// Reload drops the dataset for a language and loads it again. Unlike browse,
// a failed load is reported here: the caller asked for a refresh explicitly.
func (uc *PlacesUseCase) Reload(ctx context.Context, lang domain.Language) (*dto.ReloadResponse, error) {
	if err := uc.catalog.Invalidate(ctx, lang); err != nil {
		return nil, err
	}

	places, err := uc.catalog.Load(ctx, lang)
	if err != nil {
		return nil, err
	}

	return &dto.ReloadResponse{
		Language: lang.String(),
		Total:    len(places),
		Dropped:  uc.catalog.DroppedRows(lang),
	}, nil
}

// load fetches the dataset, downgrading an unavailable dataset to an empty
// one. Invalid languages still propagate.
func (uc *PlacesUseCase) load(ctx context.Context, lang domain.Language) ([]domain.Place, error) {
	places, err := uc.catalog.Load(ctx, lang)
	if err == errors.ErrDatasetUnavailable {
		uc.logger.Warn("Serving empty dataset after failed load",
			zap.String("language", lang.String()))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return places, nil
}
