// Package dto defines data transfer objects for the account feature's HTTP transport layer.
package dto

// SignupReq represents the request body for POST /api/signup.
// Only presence is validated; the binding rejects empty strings as well.
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
