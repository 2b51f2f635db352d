package model

import "time"

// Advertisement represents a classified ad owned by a user
type Advertisement struct {
	ID          int64     `json:"id"`
	Header      string    `json:"header"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     int64     `json:"owner_id"`
}

// CreateAdvertisementRequest is the creation schema for an advertisement
type CreateAdvertisementRequest struct {
	Header      string `json:"header" binding:"required,nonul"`
	Description string `json:"description" binding:"required,nonul"`
	OwnerID     int64  `json:"owner_id" binding:"required,gt=0"`
}

// UpdateAdvertisementRequest only allows header and description; ownership is fixed at creation
type UpdateAdvertisementRequest struct {
	Header      *string `json:"header,omitempty" binding:"omitempty,min=1,nonul"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,nonul"`
}

// AdvertisementResponse is the public projection of an advertisement
type AdvertisementResponse struct {
	Header  string `json:"header"`
	OwnerID int64  `json:"owner_id"`
}

type CreateAdvertisementResponse struct {
	ID     int64  `json:"id"`
	Header string `json:"header"`
}

// StatusResponse acknowledges a successful update or delete
type StatusResponse struct {
	Status string `json:"status"`
}

const StatusSuccess = "success"
