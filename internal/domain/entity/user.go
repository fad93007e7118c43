// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhonePattern describes an accepted phone number format: a country prefix
// followed by a fixed number of digits.
type PhonePattern struct {
	Prefix string
	Digits int
}

// PhonePatterns lists the registered country formats accepted for login.
var PhonePatterns = []PhonePattern{
	{Prefix: "+7", Digits: 10},
	{Prefix: "+44", Digits: 10},
}

// ValidatePhone checks a phone number against the registered country patterns.
func ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	for _, p := range PhonePatterns {
		if strings.HasPrefix(phone, p.Prefix) && len(phone) == len(p.Prefix)+p.Digits && digitsOnly(phone[len(p.Prefix):]) {
			return nil
		}
	}
	formats := make([]string, len(PhonePatterns))
	for i, p := range PhonePatterns {
		formats[i] = fmt.Sprintf("%s + %d digits", p.Prefix, p.Digits)
	}
	return fmt.Errorf("invalid phone number %q, accepted formats: %s", phone, strings.Join(formats, ", "))
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// User represents an account in the ledger. Users double as contractors and
// counterparties on projects and transactions. The phone number is the login.
type User struct {
	ID           uuid.UUID
	Phone        string
	FirstName    string
	LastName     string
	ExtID        string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(phone, firstName, lastName, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Phone:        strings.TrimSpace(phone),
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DisplayName returns the user's full name, falling back to the phone number.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.LastName + " " + u.FirstName)
	if name != "" {
		return name
	}
	return u.Phone
}
