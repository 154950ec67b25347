package dto

import "github.com/Takahiruma/lejapong/internal/domain"

// PlaceResponse mirrors the catalog record on the wire.
type PlaceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	District     string `json:"district"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
	Link         string `json:"link"`
	Comment      string `json:"comment"`
}

// PlaceListResponse is the browse result.
type PlaceListResponse struct {
	Places []PlaceResponse `json:"places"`
	Total  int             `json:"total"`
}

// FilterOptionsResponse lists the selectable values per filter dimension.
type FilterOptionsResponse struct {
	Cities        []string `json:"cities"`
	Districts     []string `json:"districts"`
	ActivityTypes []string `json:"activity_types"`
}

// ReloadResponse reports the outcome of a forced dataset reload.
type ReloadResponse struct {
	Language string `json:"language"`
	Total    int    `json:"total"`
	Dropped  int    `json:"dropped"`
}

// ConvertPlace maps a domain record to its response shape.
func ConvertPlace(p domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:           p.ID,
		Name:         p.Name,
		City:         p.City,
		District:     p.District,
		ActivityType: p.ActivityType,
		Description:  p.Description,
		Link:         p.Link,
		Comment:      p.Comment,
	}
}

// ConvertPlaces maps a dataset slice, never returning nil so the JSON stays
// an array.
func ConvertPlaces(places []domain.Place) []PlaceResponse {
	result := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		result = append(result, ConvertPlace(p))
	}
	return result
}
