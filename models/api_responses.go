package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Gin context keys shared between the middleware and the response envelope.
const (
	RateLimiterKey = "rateLimiter"
	RequestIDKey   = "requestID"
)

// ApiResponse is the envelope every /api/catalog answer and every
// middleware rejection is wrapped in.
type ApiResponse struct {
	Message         string       `json:"message" example:"Catalog fetched successfully"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty" example:"GET /api/catalog"`
	RequestID       string       `json:"request_id,omitempty" example:"3f1c9a52-8d0e-4b7a-9a61-2c5e0d7b4f10"`
}

// MessageResponse is the bare error body of the product proxy, which keeps
// the upstream's own success bodies untouched.
type MessageResponse struct {
	Message string `json:"message" example:"Failed to fetch products."`
}

// Pagination describes the filtered catalog, not the upstream listing.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"6"`
	Total      int `json:"total" example:"42"`
	TotalPages int `json:"total_pages" example:"7"`
}

// RateLimiter is the visitor's fixed-window budget as of this request.
type RateLimiter struct {
	Limit          int       `json:"limit" example:"100"`
	Remaining      int       `json:"remaining" example:"97"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds" example:"42"`
}

// envelope fills the request-scoped fields. c may be nil outside a handler.
func envelope(c *gin.Context, message string) ApiResponse {
	resp := ApiResponse{Message: message}
	if c == nil {
		return resp
	}
	if rate, ok := c.Get(RateLimiterKey); ok {
		resp.Rate, _ = rate.(*RateLimiter)
	}
	resp.RequestID = c.GetString(RequestIDKey)
	if c.Request != nil {
		resp.RequestedEntity = c.Request.Method + " " + c.FullPath()
	}
	return resp
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	resp := envelope(c, message)
	resp.Data = data
	return resp
}

// PaginatedResponse is SuccessResponse plus the page metadata.
func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	resp := SuccessResponse(c, message, data)
	resp.Meta = meta
	return resp
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	resp := envelope(c, message)
	resp.Error = true
	return resp
}
