package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Account validation errors.
var (
	ErrEmptyAccountID      = errors.New("account ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length bounds. The upper bound is bcrypt's practical limit.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// Account represents a registered user of the service. The account ID,
// rendered as a string, is the UserID that keys the reading profile.
type Account struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between registration and hashing
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccount creates an Account with the given email and plaintext password.
// The caller is responsible for hashing the password before storage.
// Returns an error if validation fails.
func NewAccount(email, password string) (*Account, error) {
	account := &Account{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Email == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return ErrInvalidEmail
	}

	if a.Password != "" {
		if len(a.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(a.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if a.HashedPassword == "" {
		// Existing accounts loaded from storage carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// ProfileUserID returns the account ID as the UserID value object that
// keys the account's reading profile.
func (a *Account) ProfileUserID() (UserID, error) {
	return NewUserID(a.ID.String())
}
