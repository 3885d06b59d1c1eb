package models

// User represents a registered account.
type User struct {
	ID       string `json:"id" validate:"omitempty,uuid"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `validate:"required,min=6"` // No json tag for security
	Avatar   string `json:"avatar,omitempty"`
}

// Session is the public projection of an authenticated user. It is what
// gets persisted to the durable session slot; the password never leaves
// the identity store.
type Session struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
