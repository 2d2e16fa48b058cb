package domain

import "time"

// Business is a directory listing as the remote API serves it. Latitude and
// longitude are optional; listings without them sort last on distance.
type Business struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zipCode"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Website       string   `json:"website,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	AverageRating float64  `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// Review is a star rating with an optional comment.
type Review struct {
	ID            int64     `json:"id"`
	BusinessID    int64     `json:"businessId"`
	UserID        int64     `json:"userId"`
	UserFirstName string    `json:"userFirstName"`
	UserLastName  string    `json:"userLastName"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ClaimStatus is the lifecycle state of an ownership claim. Transitions are
// decided by the remote API; the gateway only relays them.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "PENDING"
	ClaimApproved ClaimStatus = "APPROVED"
	ClaimRejected ClaimStatus = "REJECTED"
)

// BusinessClaim is a user's request to be recognised as a listing's owner.
type BusinessClaim struct {
	ID         int64       `json:"id"`
	BusinessID int64       `json:"businessId"`
	UserID     int64       `json:"userId"`
	UserEmail  string      `json:"userEmail"`
	Evidence   string      `json:"evidence"`
	Status     ClaimStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Business   *Business   `json:"business,omitempty"`
}

// Page is the remote API's pagination envelope (Spring-style field names).
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}
