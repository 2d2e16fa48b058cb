package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-gateway/internal/core/domain"
	"github.com/localspot/directory-gateway/internal/core/ports"
	"github.com/localspot/directory-gateway/internal/pkg/geo"
)

// BusinessHandler proxies the directory's browse, search, and review
// endpoints. Distance sorting happens here rather than upstream; the remote
// API has no notion of the caller's position.
type BusinessHandler struct {
	directory ports.DirectoryAPI
}

func NewBusinessHandler(directory ports.DirectoryAPI) *BusinessHandler {
	return &BusinessHandler{directory: directory}
}

// List serves GET /businesses and GET /businesses/search. A request with
// name/category/location filters goes to the upstream search endpoint, a bare
// one to the plain listing; the page shape is identical either way.
func (h *BusinessHandler) List(c echo.Context) error {
	var q listBusinessesQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}

	ctx := c.Request().Context()
	var page *domain.Page[domain.Business]
	var err error
	if q.hasFilters() {
		page, err = h.directory.SearchBusinesses(ctx, ports.SearchBusinessesInput{
			Name:     q.Name,
			Category: q.Category,
			Location: q.Location,
			Page:     q.Page,
			Size:     q.Size,
		})
	} else {
		page, err = h.directory.ListBusinesses(ctx, q.Page, q.Size)
	}
	if err != nil {
		return err
	}

	resp := listBusinessesResponse{Page: *page}
	if q.hasPosition() {
		geo.SortByDistance(resp.Content, *q.Lat, *q.Lng)
		resp.SortedByDistance = true
	}
	return c.JSON(http.StatusOK, resp)
}

// Get serves GET /businesses/:id.
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.directory.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, business)
}

// TopRated serves GET /businesses/top-rated, optionally filtered by category.
func (h *BusinessHandler) TopRated(c echo.Context) error {
	businesses, err := h.directory.TopRatedBusinesses(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, businesses)
}

// Create serves POST /businesses, the business detail form.
func (h *BusinessHandler) Create(c echo.Context) error {
	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	business, err := h.directory.CreateBusiness(c.Request().Context(), ports.CreateBusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, business)
}

// ListReviews serves GET /businesses/:id/reviews.
func (h *BusinessHandler) ListReviews(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.directory.ListReviews(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// AddReview serves POST /businesses/:id/reviews.
func (h *BusinessHandler) AddReview(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	review, err := h.directory.AddReview(c.Request().Context(), id, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
