package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role constants for authorization. Only admins may sign in to the dashboard.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// DefaultImageURL is used when a user record carries no profile image.
const DefaultImageURL = "https://image.pollinations.ai/prompt/image-placeholder-for-user"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Status       UserStatus         `bson:"status,omitempty" json:"status"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl"`
	Modules      []string           `bson:"modules,omitempty" json:"modules"`
	LastActive   *time.Time         `bson:"lastActive,omitempty" json:"lastActive"`
}

// ApplyDefaults fills optional fields older records leave unset.
func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleUser
	}
	if u.Status == "" {
		u.Status = UserStatusInactive
	}
	if u.ImageURL == "" {
		u.ImageURL = DefaultImageURL
	}
	if u.Modules == nil {
		u.Modules = []string{}
	}
}
