package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/pkg/errors"
	"github.com/Takahiruma/lejapong/internal/pkg/utils"
	"github.com/Takahiruma/lejapong/internal/pkg/validator"
	"github.com/Takahiruma/lejapong/internal/usecase"
	"github.com/Takahiruma/lejapong/internal/usecase/dto"
)

// PlaceHandler exposes the catalog over HTTP.
type PlaceHandler struct {
	placesUC *usecase.PlacesUseCase
	logger   *zap.Logger
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(placesUC *usecase.PlacesUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placesUC: placesUC,
		logger:   logger,
	}
}

// List is the browse view: optional q, city, district and activity_type
// query params, all conjunctive.
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	lang, err := resolveLanguage(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.ListPlacesRequest{
		Query:        c.Query("q"),
		City:         c.Query("city"),
		District:     c.Query("district"),
		ActivityType: c.Query("activity_type"),
		Language:     lang.String(),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.placesUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		Language: lang.String(),
	})
}

// Get is the detail view; the :slug segment is matched against records by
// re-deriving the slug from their names.
func (h *PlaceHandler) Get(c *fiber.Ctx) error {
	lang, err := resolveLanguage(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	// Params returns the segment still percent-encoded.
	rawSlug, err := url.PathUnescape(c.Params("slug"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	place, err := h.placesUC.Get(c.Context(), lang, rawSlug)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, place, &utils.Meta{Language: lang.String()})
}

// FilterOptions returns the selectable values for every filter dimension.
func (h *PlaceHandler) FilterOptions(c *fiber.Ctx) error {
	lang, err := resolveLanguage(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.FilterOptionsRequest{
		City:     c.Query("city"),
		Language: lang.String(),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.placesUC.FilterOptions(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Language: lang.String()})
}

// Reload forces a fresh fetch for one language, clearing memory and cache.
func (h *PlaceHandler) Reload(c *fiber.Ctx) error {
	lang, err := resolveLanguage(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.placesUC.Reload(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		Language: lang.String(),
	})
}

// resolveLanguage picks the dataset language: an explicit lang param must be
// a recognized code, otherwise the Accept-Language header decides the way a
// browser locale would (fr* is French, everything else English).
func resolveLanguage(c *fiber.Ctx) (domain.Language, error) {
	if raw := c.Query("lang"); raw != "" {
		lang := domain.Language(raw)
		if !lang.IsValid() {
			return "", errors.ErrInvalidLanguage
		}
		return lang, nil
	}
	return domain.ParseLanguage(c.Get(fiber.HeaderAcceptLanguage)), nil
}
