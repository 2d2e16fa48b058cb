package handler

import "github.com/localspot/directory-gateway/internal/core/domain"

// --- Query / Request types ---

// listBusinessesQuery covers both the plain listing and search. lat/lng are
// optional; when both are present the page's cards are sorted by distance.
type listBusinessesQuery struct {
	Page     int      `query:"page"`
	Size     int      `query:"size"`
	Name     string   `query:"name"`
	Category string   `query:"category"`
	Location string   `query:"location"`
	Lat      *float64 `query:"lat"`
	Lng      *float64 `query:"lng"`
}

func (q listBusinessesQuery) hasFilters() bool {
	return q.Name != "" || q.Category != "" || q.Location != ""
}

func (q listBusinessesQuery) hasPosition() bool {
	return q.Lat != nil && q.Lng != nil
}

type createBusinessRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"required"`
	Address     string `json:"address"     validate:"required"`
	City        string `json:"city"        validate:"required"`
	State       string `json:"state"       validate:"required"`
	ZipCode     string `json:"zipCode"     validate:"required"`
	Phone       string `json:"phone"       validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Website     string `json:"website"`
}

type addReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// --- Response types ---

// listBusinessesResponse is the upstream page plus the sort the UI applied.
type listBusinessesResponse struct {
	domain.Page[domain.Business]
	SortedByDistance bool `json:"sortedByDistance"`
}
