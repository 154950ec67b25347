package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Takahiruma/lejapong/internal/delivery/http/handler"
	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/repository/cache"
	"github.com/Takahiruma/lejapong/internal/usecase"
)

const frCSV = "Nom,Ville,Quartier,Type d'activité,Description\n" +
	"Café Central,Lyon,Croix-Rousse,Restaurant,Terrasse ombragée\n" +
	"Chez Michel,Paris,Le Marais,Restaurant,Bistrot de quartier\n" +
	"Musée d'Orsay,Paris,7e,Musée,Peinture impressionniste\n"

const enCSV = "Name,City,District,Activity Type,Description\n" +
	"Central Cafe,Lyon,Croix-Rousse,Restaurant,Shaded terrace\n"

// stubSource serves fixed CSV bytes per language.
type stubSource struct {
	data map[domain.Language][]byte
	err  error
}

func (s *stubSource) Fetch(_ context.Context, lang domain.Language) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[lang], nil
}

func newTestApp(t *testing.T, source *stubSource) *fiber.App {
	t.Helper()

	logger := zap.NewNop()
	catalog := usecase.NewCatalogUseCase(source, cache.NewMemoryRepository(), logger, time.Hour)
	placesUC := usecase.NewPlacesUseCase(catalog, logger)
	h := handler.NewPlaceHandler(placesUC, logger)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/places", h.List)
	api.Get("/places/filters", h.FilterOptions)
	api.Get("/places/:slug", h.Get)
	api.Post("/places/reload", h.Reload)
	return app
}

func defaultSource() *stubSource {
	return &stubSource{data: map[domain.Language][]byte{
		domain.LanguageFR: []byte(frCSV),
		domain.LanguageEN: []byte(enCSV),
	}}
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestPlaceHandler_List(t *testing.T) {
	t.Run("lists the dataset of the requested language", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places?lang=fr", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(3), data["total"])
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, "fr", meta["language"])
	})

	t.Run("filters are passed through", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places?lang=fr&city=Paris&activity_type=Restaurant", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		places := data["places"].([]interface{})
		require.Len(t, places, 1)
		assert.Equal(t, "Chez Michel", places[0].(map[string]interface{})["name"])
	})

	t.Run("language falls back to Accept-Language", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		req := httptest.NewRequest("GET", "/api/v1/places", nil)
		req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, "fr", meta["language"])
	})

	t.Run("no header means English", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["total"])
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, "en", meta["language"])
	})

	t.Run("explicit unknown language is rejected", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places?lang=de", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unavailable dataset renders as an empty list", func(t *testing.T) {
		app := newTestApp(t, &stubSource{err: errors.New("network down")})

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places?lang=fr", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["total"])
		places, ok := data["places"].([]interface{})
		require.True(t, ok, "places must stay a JSON array")
		assert.Empty(t, places)
	})
}

func TestPlaceHandler_Get(t *testing.T) {
	t.Run("resolves a slug to the record", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places/cafe-central?lang=fr", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Café Central", data["name"])
		assert.Equal(t, "Lyon", data["city"])
	})

	t.Run("percent-encoded accented segment resolves", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		target := "/api/v1/places/" + url.PathEscape("Musée d'Orsay") + "?lang=fr"
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Musée d'Orsay", data["name"])
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places/no-such-place?lang=fr", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		errObj := body["error"].(map[string]interface{})
		assert.Equal(t, "PLACE_NOT_FOUND", errObj["code"])
	})
}

func TestPlaceHandler_FilterOptions(t *testing.T) {
	t.Run("lists option values per dimension", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places/filters?lang=fr", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		cities := data["cities"].([]interface{})
		assert.Equal(t, []interface{}{"Lyon", "Paris"}, cities)
	})

	t.Run("city narrows only the districts", func(t *testing.T) {
		app := newTestApp(t, defaultSource())

		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/places/filters?lang=fr&city=Paris", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, []interface{}{"7e", "Le Marais"}, data["districts"])
		assert.Equal(t, []interface{}{"Lyon", "Paris"}, data["cities"])
	})
}

func TestPlaceHandler_Reload(t *testing.T) {
	t.Run("reloads the dataset", func(t *testing.T) {
		source := defaultSource()
		app := newTestApp(t, source)

		resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/places/reload?lang=fr", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp.Body)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "fr", data["language"])
		assert.Equal(t, float64(3), data["total"])
	})

	t.Run("a failed reload is a 503", func(t *testing.T) {
		app := newTestApp(t, &stubSource{err: errors.New("network down")})

		resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/places/reload?lang=fr", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}
