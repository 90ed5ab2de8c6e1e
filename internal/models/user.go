package models

import (
	"strings"

	"gorm.io/gorm"
)

// Roles recognized by the role-gating middleware.
const (
	RoleCitizen = "CITIZEN"
	RoleAdmin   = "ADMIN"
)

// User представляє обліковий запис громадянина або адміністратора.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"` // CITIZEN or ADMIN
}

// BeforeCreate — це хук GORM, який викликається перед створенням запису.
// It normalizes the email and defaults the role to CITIZEN.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = RoleCitizen
	}
	return
}
