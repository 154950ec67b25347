package ingest

import "github.com/Takahiruma/lejapong/internal/domain"

// fieldSpec lists the candidate header names for one place attribute, in
// resolution order. The datasets shipped with French headers first and grew
// English ones later, so both spellings stay accepted in either file.
type fieldSpec struct {
	headers []string
	assign  func(*domain.Place, string)
}

var fieldSpecs = []fieldSpec{
	{[]string{"Nom", "Name"}, func(p *domain.Place, v string) { p.Name = v }},
	{[]string{"Ville", "City"}, func(p *domain.Place, v string) { p.City = v }},
	{[]string{"Quartier", "District"}, func(p *domain.Place, v string) { p.District = v }},
	{[]string{"Type d'activité", "Activity Type"}, func(p *domain.Place, v string) { p.ActivityType = v }},
	{[]string{"Description"}, func(p *domain.Place, v string) { p.Description = v }},
	{[]string{"lieux/site", "Link"}, func(p *domain.Place, v string) { p.Link = v }},
	{[]string{"Commentaire", "Comment"}, func(p *domain.Place, v string) { p.Comment = v }},
}

// resolve returns the first non-empty value among the candidate headers,
// defaulting to the empty string.
func (r Row) resolve(headers []string) string {
	for _, h := range headers {
		if v := r[h]; v != "" {
			return v
		}
	}
	return ""
}
