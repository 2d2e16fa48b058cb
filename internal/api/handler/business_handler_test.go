package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
)

type stubDirectoryAPI struct {
	listFn     func(ctx context.Context, page, size int) (*domain.Page[domain.Business], error)
	searchFn   func(ctx context.Context, input ports.SearchBusinessesInput) (*domain.Page[domain.Business], error)
	getFn      func(ctx context.Context, id int64) (*domain.Business, error)
	topRatedFn func(ctx context.Context, category string) ([]domain.Business, error)
	createFn   func(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error)

	listReviewsFn func(ctx context.Context, businessID int64) ([]domain.Review, error)
	addReviewFn   func(ctx context.Context, businessID int64, rating int, comment string) (*domain.Review, error)

	submitClaimFn func(ctx context.Context, businessID int64, evidence string) (*domain.BusinessClaim, error)
	listClaimsFn  func(ctx context.Context) ([]domain.BusinessClaim, error)
	updateClaimFn func(ctx context.Context, claimID int64, status domain.ClaimStatus) (*domain.BusinessClaim, error)
}

func (s *stubDirectoryAPI) ListBusinesses(ctx context.Context, page, size int) (*domain.Page[domain.Business], error) {
	return s.listFn(ctx, page, size)
}

func (s *stubDirectoryAPI) SearchBusinesses(ctx context.Context, input ports.SearchBusinessesInput) (*domain.Page[domain.Business], error) {
	return s.searchFn(ctx, input)
}

func (s *stubDirectoryAPI) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	return s.getFn(ctx, id)
}

func (s *stubDirectoryAPI) TopRatedBusinesses(ctx context.Context, category string) ([]domain.Business, error) {
	return s.topRatedFn(ctx, category)
}

func (s *stubDirectoryAPI) CreateBusiness(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error) {
	return s.createFn(ctx, input)
}

func (s *stubDirectoryAPI) ListReviews(ctx context.Context, businessID int64) ([]domain.Review, error) {
	return s.listReviewsFn(ctx, businessID)
}

func (s *stubDirectoryAPI) AddReview(ctx context.Context, businessID int64, rating int, comment string) (*domain.Review, error) {
	return s.addReviewFn(ctx, businessID, rating, comment)
}

func (s *stubDirectoryAPI) SubmitClaim(ctx context.Context, businessID int64, evidence string) (*domain.BusinessClaim, error) {
	return s.submitClaimFn(ctx, businessID, evidence)
}

func (s *stubDirectoryAPI) ListClaims(ctx context.Context) ([]domain.BusinessClaim, error) {
	return s.listClaimsFn(ctx)
}

func (s *stubDirectoryAPI) UpdateClaimStatus(ctx context.Context, claimID int64, status domain.ClaimStatus) (*domain.BusinessClaim, error) {
	return s.updateClaimFn(ctx, claimID, status)
}

func onePage(businesses ...domain.Business) *domain.Page[domain.Business] {
	return &domain.Page[domain.Business]{
		Content:       businesses,
		TotalElements: int64(len(businesses)),
		TotalPages:    1,
		Size:          10,
	}
}

func TestBusinessHandler_List_PlainListing(t *testing.T) {
	stub := &stubDirectoryAPI{
		listFn: func(ctx context.Context, page, size int) (*domain.Page[domain.Business], error) {
			if page != 2 || size != 5 {
				t.Fatalf("unexpected paging: page=%d size=%d", page, size)
			}
			return onePage(domain.Business{ID: 1, Name: "Taqueria Norte"}), nil
		},
		searchFn: func(ctx context.Context, input ports.SearchBusinessesInput) (*domain.Page[domain.Business], error) {
			t.Fatalf("search should not be called without filters")
			return nil, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/businesses?page=2&size=5", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["sortedByDistance"] != false {
		t.Fatalf("no position given, expected sortedByDistance=false: %+v", resp)
	}
}

func TestBusinessHandler_List_FiltersDispatchToSearch(t *testing.T) {
	stub := &stubDirectoryAPI{
		listFn: func(ctx context.Context, page, size int) (*domain.Page[domain.Business], error) {
			t.Fatalf("plain listing should not be called with filters")
			return nil, nil
		},
		searchFn: func(ctx context.Context, input ports.SearchBusinessesInput) (*domain.Page[domain.Business], error) {
			if input.Category != "restaurant" || input.Location != "Austin" {
				t.Fatalf("unexpected search input: %+v", input)
			}
			return onePage(), nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/businesses/search?category=restaurant&location=Austin", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBusinessHandler_List_SortsByDistance(t *testing.T) {
	austinLat, austinLng := 30.2672, -97.7431
	dallasLat, dallasLng := 32.7767, -96.7970
	roundRockLat, roundRockLng := 30.5083, -97.6789

	stub := &stubDirectoryAPI{
		listFn: func(ctx context.Context, page, size int) (*domain.Page[domain.Business], error) {
			return onePage(
				domain.Business{ID: 1, Name: "Far", Latitude: &dallasLat, Longitude: &dallasLng},
				domain.Business{ID: 2, Name: "Unlocated"},
				domain.Business{ID: 3, Name: "Near", Latitude: &roundRockLat, Longitude: &roundRockLng},
			), nil
		},
	}
	handler := NewBusinessHandler(stub)

	target := "/businesses?lat=" + formatCoord(austinLat) + "&lng=" + formatCoord(austinLng)
	c, rec := newTestContext(t, http.MethodGet, target, "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Content          []domain.Business `json:"content"`
		SortedByDistance bool              `json:"sortedByDistance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.SortedByDistance {
		t.Fatalf("expected sortedByDistance=true")
	}
	if len(resp.Content) != 3 || resp.Content[0].Name != "Near" || resp.Content[1].Name != "Far" || resp.Content[2].Name != "Unlocated" {
		t.Fatalf("unexpected order: %+v", resp.Content)
	}
}

func formatCoord(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestBusinessHandler_Get(t *testing.T) {
	stub := &stubDirectoryAPI{
		getFn: func(ctx context.Context, id int64) (*domain.Business, error) {
			if id != 42 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.Business{ID: 42, Name: "Cafe Luz"}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/businesses/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBusinessHandler_Get_InvalidID(t *testing.T) {
	stub := &stubDirectoryAPI{
		getFn: func(ctx context.Context, id int64) (*domain.Business, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/businesses/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBusinessHandler_TopRated(t *testing.T) {
	stub := &stubDirectoryAPI{
		topRatedFn: func(ctx context.Context, category string) ([]domain.Business, error) {
			if category != "bakery" {
				t.Fatalf("unexpected category: %q", category)
			}
			return []domain.Business{{ID: 9, Name: "Panaderia Sol", AverageRating: 4.9}}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/businesses/top-rated?category=bakery", "")

	if err := handler.TopRated(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBusinessHandler_Create_Success(t *testing.T) {
	stub := &stubDirectoryAPI{
		createFn: func(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error) {
			if input.Name != "Cafe Luz" || input.ZipCode != "78701" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Business{ID: 7, Name: input.Name}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	body := `{"name":"Cafe Luz","description":"Coffee and pan dulce","category":"cafe","address":"100 Congress Ave","city":"Austin","state":"TX","zipCode":"78701","phone":"512-555-0100","email":"hola@cafeluz.example"}`
	c, rec := newTestContext(t, http.MethodPost, "/businesses", body)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBusinessHandler_Create_MissingFields(t *testing.T) {
	stub := &stubDirectoryAPI{
		createFn: func(ctx context.Context, input ports.CreateBusinessInput) (*domain.Business, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/businesses", `{"name":"Only a name"}`)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBusinessHandler_AddReview_Success(t *testing.T) {
	stub := &stubDirectoryAPI{
		addReviewFn: func(ctx context.Context, businessID int64, rating int, comment string) (*domain.Review, error) {
			if businessID != 42 || rating != 5 || comment != "great tacos" {
				t.Fatalf("unexpected args: %d %d %q", businessID, rating, comment)
			}
			return &domain.Review{ID: 1, BusinessID: businessID, Rating: rating, Comment: comment}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/businesses/42/reviews", `{"rating":5,"comment":"great tacos"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := handler.AddReview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBusinessHandler_AddReview_RatingOutOfRange(t *testing.T) {
	stub := &stubDirectoryAPI{
		addReviewFn: func(ctx context.Context, businessID int64, rating int, comment string) (*domain.Review, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/businesses/42/reviews", `{"rating":6}`)
	c.SetParamNames("id")
	c.SetParamValues("42")

	_ = handler.AddReview(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
