package domain

import "time"

// User is an HR/office user of the application, used only for session
// context on the API surface.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
