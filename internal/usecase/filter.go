package usecase

import (
	"sort"
	"strings"

	"github.com/Takahiruma/lejapong/internal/domain"
)

// Filter holds the active browse constraints. The zero value matches
// everything; an empty string means the dimension is unset.
type Filter struct {
	Query        string
	City         string
	District     string
	ActivityType string
}

// FilterPlaces returns the subset of places satisfying every active
// constraint: name substring match is case-insensitive, the select dimensions
// compare exactly. Records without a usable name never match.
func FilterPlaces(places []domain.Place, f Filter) []domain.Place {
	query := strings.ToLower(f.Query)

	result := make([]domain.Place, 0, len(places))
	for _, p := range places {
		if !p.HasName() {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if f.City != "" && p.City != f.City {
			continue
		}
		if f.District != "" && p.District != f.District {
			continue
		}
		if f.ActivityType != "" && p.ActivityType != f.ActivityType {
			continue
		}
		result = append(result, p)
	}
	return result
}

// AvailableCities lists the distinct city values of the full dataset, sorted.
func AvailableCities(places []domain.Place) []string {
	return distinct(places, func(p domain.Place) string { return p.City })
}

// AvailableActivityTypes lists the distinct activity types of the full
// dataset, sorted. Like cities, it is never narrowed by other filters.
func AvailableActivityTypes(places []domain.Place) []string {
	return distinct(places, func(p domain.Place) string { return p.ActivityType })
}

// AvailableDistricts lists the distinct districts, restricted to the given
// city when one is set. The conditioning is one-directional: district never
// narrows the city options.
func AvailableDistricts(places []domain.Place, city string) []string {
	if city == "" {
		return distinct(places, func(p domain.Place) string { return p.District })
	}

	var scoped []domain.Place
	for _, p := range places {
		if p.City == city {
			scoped = append(scoped, p)
		}
	}
	return distinct(scoped, func(p domain.Place) string { return p.District })
}

func distinct(places []domain.Place, value func(domain.Place) string) []string {
	seen := make(map[string]struct{}, len(places))
	result := make([]string, 0, len(places))
	for _, p := range places {
		v := value(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
