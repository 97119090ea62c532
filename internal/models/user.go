package models

import "time"

// Account is the public projection of a registered user. It never carries the
// password hash; use AccountWithSecret on the login path.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountWithSecret adds the stored bcrypt hash to an Account.
type AccountWithSecret struct {
	Account
	PasswordHash string `json:"-"`
}

// Defaults applied when optional profile fields are omitted.
const (
	DefaultLastName = "lastName"
	DefaultLocation = "my city"
)
