package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);default:'user'" json:"role"`
	Designation  string   `json:"designation"`
	Mobile       string   `json:"mobile"`

	// Image is the avatar filename; the same name addresses both the
	// original under profile_img/ and the thumbnail under
	// profile_img/thumb/. Empty when the user has no avatar.
	Image string `json:"image"`

	ResetToken    string     `json:"-"`
	ResetTokenExp *time.Time `json:"-"`
}
