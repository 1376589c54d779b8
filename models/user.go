package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	Name          string    `json:"name,omitempty" bson:"name,omitempty"`
	Bio           string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Avatar        string    `json:"avatar" bson:"avatar"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin     time.Time `json:"last_login" bson:"last_login"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
}

// UserProfileResponse is the public shape returned by profile endpoints.
type UserProfileResponse struct {
	UserID    string    `json:"userid"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar"`
	LastLogin time.Time `json:"last_login"`
}
