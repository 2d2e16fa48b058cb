package ports

import (
	"context"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

// RegisterInput carries a new account's profile. ConfirmPassword is checked
// client-side before any request is issued; the remote API never sees it.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// AuthAPI is the slice of the remote API the session service depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)
	Register(ctx context.Context, input RegisterInput) (*domain.Credentials, error)
}

// SearchBusinessesInput mirrors the remote search endpoint's query surface.
// Zero-valued filters are omitted from the request.
type SearchBusinessesInput struct {
	Name     string
	Category string
	Location string
	Page     int
	Size     int
}

// CreateBusinessInput carries a submitted business detail form.
type CreateBusinessInput struct {
	Name        string
	Description string
	Category    string
	Address     string
	City        string
	State       string
	ZipCode     string
	Phone       string
	Email       string
	Website     string
}

// DirectoryAPI covers the resource endpoints of the remote API. Every call is
// sent with the session's current bearer token when one exists.
type DirectoryAPI interface {
	ListBusinesses(ctx context.Context, page, size int) (*domain.Page[domain.Business], error)
	SearchBusinesses(ctx context.Context, input SearchBusinessesInput) (*domain.Page[domain.Business], error)
	GetBusiness(ctx context.Context, id int64) (*domain.Business, error)
	TopRatedBusinesses(ctx context.Context, category string) ([]domain.Business, error)
	CreateBusiness(ctx context.Context, input CreateBusinessInput) (*domain.Business, error)

	ListReviews(ctx context.Context, businessID int64) ([]domain.Review, error)
	AddReview(ctx context.Context, businessID int64, rating int, comment string) (*domain.Review, error)

	SubmitClaim(ctx context.Context, businessID int64, evidence string) (*domain.BusinessClaim, error)
	ListClaims(ctx context.Context) ([]domain.BusinessClaim, error)
	UpdateClaimStatus(ctx context.Context, claimID int64, status domain.ClaimStatus) (*domain.BusinessClaim, error)
}
