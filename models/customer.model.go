package models

// Customer represents an account in the system. Balance is held in the
// minor currency unit and is only ever decremented by a successful
// checkout.
type Customer struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"-"`
	Balance           int    `json:"balance"`
	Role              string `json:"role"` // "customer" or "admin"
	IsVerified        bool   `json:"is_verified"`
	VerificationToken string `json:"-"`
}
