package model

import "time"

type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleAuthor  UserRole = "AUTHOR"
	UserRoleUser    UserRole = "USER"
	UserRolePremium UserRole = "PREMIUM"
)

type User struct {
	DTO
	FirstName              string     `json:"firstName"`
	LastName               string     `json:"lastName"`
	Email                  string     `gorm:"unique" json:"email"`
	Role                   UserRole   `json:"role"`
	SubscriptionValidUntil *time.Time `json:"subscriptionValidUntil,omitempty"`
}

// DisplayName is what payment listings match keywords against.
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
