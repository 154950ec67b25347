package ingest

import (
	"strings"

	"github.com/Takahiruma/lejapong/internal/domain"
	"github.com/Takahiruma/lejapong/internal/pkg/slug"
)

// Rejection reasons reported per dropped row.
const (
	ReasonEmptyName       = "empty_name"
	ReasonPlaceholderName = "placeholder_name"
)

// Result is the typed outcome of normalizing one raw row: either an accepted
// place or a rejection with its reason. Rejections are routine filtering,
// not faults.
type Result struct {
	Place  domain.Place
	Reason string
}

// Accepted reports whether the row produced a place.
func (r Result) Accepted() bool {
	return r.Reason == ""
}

// Normalize resolves a raw row into a canonical Place, or rejects it when the
// resolved, trimmed name is empty or the "-" placeholder. The stored ID is the
// slug of the raw (untrimmed) name, matching what lookup derives from a route
// segment.
func Normalize(row Row) Result {
	var p domain.Place
	for _, spec := range fieldSpecs {
		spec.assign(&p, row.resolve(spec.headers))
	}

	switch strings.TrimSpace(p.Name) {
	case "":
		return Result{Reason: ReasonEmptyName}
	case domain.NamePlaceholder:
		return Result{Reason: ReasonPlaceholderName}
	}

	p.ID = slug.Make(p.Name)
	return Result{Place: p}
}

// NormalizeAll maps every row through Normalize and splits the outcomes into
// the accepted places and a count of rejections per reason.
func NormalizeAll(rows []Row) ([]domain.Place, map[string]int) {
	places := make([]domain.Place, 0, len(rows))
	dropped := make(map[string]int)

	for _, row := range rows {
		res := Normalize(row)
		if !res.Accepted() {
			dropped[res.Reason]++
			continue
		}
		places = append(places, res.Place)
	}

	return places, dropped
}
