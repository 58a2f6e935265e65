package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

const minPasswordLength = 6

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// User is an operator account that can sign in.
type User struct {
	id           uint
	username     string
	fullName     string
	passwordHash string
	role         authorization.UserRole
	isActive     bool
	createdAt    time.Time
}

func NewUser(username, fullName, password string, role authorization.UserRole, hasher PasswordHasher, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return &User{
		username:     username,
		fullName:     strings.TrimSpace(fullName),
		passwordHash: hash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uint, username, fullName, passwordHash string, role authorization.UserRole, isActive bool, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		username:     username,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) FullName() string {
	return u.fullName
}

// DisplayName falls back to the username when no full name is recorded.
func (u *User) DisplayName() string {
	if u.fullName != "" {
		return u.fullName
	}
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) bool {
	if u.passwordHash == "" {
		return false
	}
	return hasher.Verify(password, u.passwordHash) == nil
}
