package dto

// RedeemRequest represents the API request for redeeming received credits
type RedeemRequest struct {
	Credits int `json:"credits" binding:"required"`
}
