package models

import "time"

// User is the identity-provider view of the current user. The core only
// consumes Email as a filter key; the rest is display data.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"wallet_address"`
	CreatedDate   time.Time `json:"created_date"`
	LastLogin     time.Time `json:"last_login"`
}
