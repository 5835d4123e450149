package models

// User is an account that owns courses.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"-"` // bcrypt hash, never serialized
}

// NewUserInput is the allow-listed body of POST /api/users.
type NewUserInput struct {
	FirstName    string `json:"firstName" validate:"notblank"`
	LastName     string `json:"lastName" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank"`
	Password     string `json:"password" validate:"notblank"`
}
