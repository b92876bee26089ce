// Package domain contains entity without logic, just meta-data
package domain

import (
	"errors"
	"fmt"
)

const (
	MaxUsernameLen = 36
	// UnknownUsername is shown for users the directory cannot resolve.
	UnknownUsername = "Unknown user"
	AvatarSize      = 32
)

var (
	ErrUsernameTooLong = errors.New("username too long")
	ErrUsernameEmpty   = errors.New("username empty")
)

// UserID is an opaque, externally assigned participant handle.
type UserID uint64

func (id UserID) String() string { return fmt.Sprintf("%d", uint64(id)) }

type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
func NewUser(id UserID, username string) (*User, error) {
	if len(username) == 0 {
		return nil, ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return nil, ErrUsernameTooLong
	}
	return &User{ID: id, Username: username}, nil
}

func (u *User) SetUsername(username string) error {
	if len(username) == 0 {
		return ErrUsernameEmpty
	}
	if len(username) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	u.Username = username
	return nil
}

// AvatarURL returns the avatar reference sized for a roster row.
// Empty when the user has no avatar.
func (u *User) AvatarURL(format string, size int) string {
	if u.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("%s.%s?size=%d", u.Avatar, format, size)
}
