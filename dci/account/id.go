package account

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a bank account.
type ID uuid.UUID

// UserID identifies the user owning an account.
type UserID uuid.UUID

// NewID returns a random account ID.
func NewID() ID {
	return ID(uuid.New())
}

// NewUserID returns a random user ID.
func NewUserID() UserID {
	return UserID(uuid.New())
}

// ParseID parses the canonical UUID form of an account ID.
func ParseID(s string) (ID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("parse account id: %w", err)
	}

	return ID(parsed), nil
}

// ParseUserID parses the canonical UUID form of a user ID.
func ParseUserID(s string) (UserID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("parse user id: %w", err)
	}

	return UserID(parsed), nil
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}
