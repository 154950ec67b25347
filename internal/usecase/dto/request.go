package dto

// ListPlacesRequest carries the browse filters. Language is resolved by the
// handler (explicit lang param or Accept-Language) before validation.
type ListPlacesRequest struct {
	Query        string `query:"q" validate:"omitempty,max=200"`
	City         string `query:"city" validate:"omitempty,max=200"`
	District     string `query:"district" validate:"omitempty,max=200"`
	ActivityType string `query:"activity_type" validate:"omitempty,max=200"`
	Language     string `validate:"required,oneof=fr en"`
}

// FilterOptionsRequest asks for the selectable filter values; Districts are
// conditioned by City when it is set.
type FilterOptionsRequest struct {
	City     string `query:"city" validate:"omitempty,max=200"`
	Language string `validate:"required,oneof=fr en"`
}
