package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func pageQuery(page, size int) url.Values {
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	if page < 0 {
		page = 0
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

func (c *Client) ListBusinesses(ctx context.Context, page, size int) (*domain.Page[domain.Business], error) {
	var out domain.Page[domain.Business]
	if err := c.do(ctx, "list_businesses", http.MethodGet, "/businesses", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SearchBusinesses(ctx context.Context, input ports.SearchBusinessesInput) (*domain.Page[domain.Business], error) {
	q := pageQuery(input.Page, input.Size)
	if input.Name != "" {
		q.Set("name", input.Name)
	}
	if input.Category != "" {
		q.Set("category", input.Category)
	}
	if input.Location != "" {
		q.Set("location", input.Location)
	}

	var out domain.Page[domain.Business]
	if err := c.do(ctx, "search_businesses", http.MethodGet, "/businesses/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	var out domain.Business
	if err := c.do(ctx, "get_business", http.MethodGet, fmt.Sprintf("/businesses/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopRatedBusinesses(ctx context.Context, category string) ([]domain.Business, error) {
	var q url.Values
	if category != "" {
		q = url.Values{"category": {category}}
	}

	var out []domain.Business
	if err := c.do(ctx, "top_rated", http.MethodGet, "/businesses/top-rated", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type createBusinessRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website,omitempty"`
}

func (c *Client) CreateBusiness(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error) {
	req := createBusinessRequest{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
	}

	var out domain.Business
	if err := c.do(ctx, "create_business", http.MethodPost, "/businesses", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListReviews(ctx context.Context, businessID int64) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, "list_reviews", http.MethodGet, fmt.Sprintf("/businesses/%d/reviews", businessID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

func (c *Client) AddReview(ctx context.Context, businessID int64, rating int, comment string) (*domain.Review, error) {
	var out domain.Review
	req := addReviewRequest{Rating: rating, Comment: comment}
	if err := c.do(ctx, "add_review", http.MethodPost, fmt.Sprintf("/businesses/%d/reviews", businessID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type submitClaimRequest struct {
	Evidence string `json:"evidence"`
}

func (c *Client) SubmitClaim(ctx context.Context, businessID int64, evidence string) (*domain.BusinessClaim, error) {
	var out domain.BusinessClaim
	req := submitClaimRequest{Evidence: evidence}
	if err := c.do(ctx, "submit_claim", http.MethodPost, fmt.Sprintf("/businesses/%d/claim", businessID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListClaims(ctx context.Context) ([]domain.BusinessClaim, error) {
	var out []domain.BusinessClaim
	if err := c.do(ctx, "list_claims", http.MethodGet, "/admin/claims", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type updateClaimRequest struct {
	Status domain.ClaimStatus `json:"status"`
}

func (c *Client) UpdateClaimStatus(ctx context.Context, claimID int64, status domain.ClaimStatus) (*domain.BusinessClaim, error) {
	if status != domain.ClaimApproved && status != domain.ClaimRejected {
		return nil, domain.NewValidationError("status", "must be APPROVED or REJECTED")
	}

	var out domain.BusinessClaim
	req := updateClaimRequest{Status: status}
	if err := c.do(ctx, "update_claim", http.MethodPut, fmt.Sprintf("/admin/claims/%d", claimID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
