package domain

import (
	"errors"
	"time"
)

// Account roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleBoth   = "both"
	RoleAdmin  = "admin"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
)

// ValidRole reports whether role is one of the accepted account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleBuyer, RoleSeller, RoleBoth, RoleAdmin:
		return true
	}
	return false
}

// User represents a marketplace account (domain model)
type User struct {
	ID           uint      `json:"user_id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	DisplayName  string    `json:"display_name" gorm:"size:100"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'buyer'"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	FindByRole(role string, limit, offset int) ([]User, error)
	Update(user *User) error
	Delete(id uint) error
	Count() (int64, error)
	CountByRole(role string) (int64, error)
}
