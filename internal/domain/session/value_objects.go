package session

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("username cannot be empty")
	ErrUsernameTooLong = errors.New("username must be at most 64 characters")
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrInvalidUsername
	}
	if len(s) > 64 {
		return Username{}, ErrUsernameTooLong
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

func (u Username) Equals(other Username) bool {
	return u.value == other.value
}
