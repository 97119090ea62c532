// Package accounts implements registration, login and profile updates on top
// of an AccountStore. Plaintext passwords never reach the store.
package accounts

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/hongminglow/jobtracker-be/internal/apperr"
	"github.com/hongminglow/jobtracker-be/internal/auth"
	"github.com/hongminglow/jobtracker-be/internal/models"
	"github.com/hongminglow/jobtracker-be/internal/storage"
)

const (
	minNameLen     = 3
	maxNameLen     = 20
	maxProfileLen  = 20
	minPasswordLen = 6
	// bcrypt ignores input past 72 bytes and x/crypto rejects it outright.
	maxPasswordBytes = 72
)

var errEmailTaken = apperr.New(apperr.DuplicateEmail, "Email already in use. Please choose another.")

// PasswordHasher hashes and checks plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	Email    string
	Name     string
	LastName string
	Location string
}

// AuthResult is the account projection plus a freshly issued token.
type AuthResult struct {
	Account models.Account
	Token   string
}

type Service struct {
	store  storage.AccountStore
	hasher PasswordHasher
	tokens TokenIssuer
	now    func() time.Time
}

func NewService(store storage.AccountStore, hasher PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{store: store, hasher: hasher, tokens: tokens, now: time.Now}
}

// Register creates an account and returns it with a session token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return AuthResult{}, apperr.New(apperr.Validation, "Please fill out all fields")
	}

	var msgs []string
	msgs = append(msgs, validateName(in.Name)...)
	msgs = append(msgs, validateEmail(in.Email)...)
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		msgs = append(msgs, "Password must be at least 6 characters")
	}
	if len(in.Password) > maxPasswordBytes {
		msgs = append(msgs, "Password must be at most 72 bytes")
	}
	if err := apperr.Validationf(msgs); err != nil {
		return AuthResult{}, err
	}

	if _, err := s.store.FindByEmail(ctx, in.Email); err == nil {
		return AuthResult{}, errEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return AuthResult{}, apperr.Wrap(apperr.Internal, "lookup account", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return AuthResult{}, err
	}

	created, err := s.store.CreateAccount(ctx, models.AccountWithSecret{
		Account: models.Account{
			ID:        uuid.NewString(),
			Email:     in.Email,
			Name:      in.Name,
			LastName:  models.DefaultLastName,
			Location:  models.DefaultLocation,
			CreatedAt: s.now().UTC(),
		},
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return AuthResult{}, errEmailTaken
		}
		return AuthResult{}, apperr.Wrap(apperr.Internal, "create account", err)
	}
	return s.withToken(created)
}

// Login verifies credentials. Unknown email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" || in.Password == "" {
		return AuthResult{}, apperr.New(apperr.Validation, "Please provide all values")
	}

	acc, err := s.FindCredentials(ctx, in.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return AuthResult{}, apperr.ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if !s.hasher.Verify(in.Password, acc.PasswordHash) {
		return AuthResult{}, apperr.ErrInvalidCredentials
	}
	return s.withToken(acc.Account)
}

// UpdateProfile replaces the caller's profile fields and re-issues a token
// carrying the new display name.
func (s *Service) UpdateProfile(ctx context.Context, id auth.Identity, in UpdateProfileInput) (AuthResult, error) {
	if id.UserID == "" {
		return AuthResult{}, apperr.New(apperr.Unauthenticated, "Authentication invalid")
	}
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Location = strings.TrimSpace(in.Location)
	if in.Email == "" || in.Name == "" || in.LastName == "" || in.Location == "" {
		return AuthResult{}, apperr.New(apperr.Validation, "Please provide all values")
	}

	var msgs []string
	msgs = append(msgs, validateName(in.Name)...)
	msgs = append(msgs, validateEmail(in.Email)...)
	if utf8.RuneCountInString(in.LastName) > maxProfileLen {
		msgs = append(msgs, "Last name must be at most 20 characters")
	}
	if utf8.RuneCountInString(in.Location) > maxProfileLen {
		msgs = append(msgs, "Location must be at most 20 characters")
	}
	if err := apperr.Validationf(msgs); err != nil {
		return AuthResult{}, err
	}

	updated, err := s.store.UpdateProfile(ctx, models.Account{
		ID:       id.UserID,
		Email:    in.Email,
		Name:     in.Name,
		LastName: in.LastName,
		Location: in.Location,
	})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return AuthResult{}, apperr.New(apperr.NotFound, "No account with id: "+id.UserID)
	case errors.Is(err, storage.ErrAlreadyExists):
		return AuthResult{}, apperr.New(apperr.DuplicateEmail, "A user with that email already exists.")
	case err != nil:
		return AuthResult{}, apperr.Wrap(apperr.Internal, "update account", err)
	}
	return s.withToken(updated)
}

// FindByEmail returns the public projection of the account.
func (s *Service) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	acc, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return models.Account{}, lookupErr(err, email)
	}
	return acc, nil
}

// FindCredentials returns the projection including the password hash.
// Only the login path should need it.
func (s *Service) FindCredentials(ctx context.Context, email string) (models.AccountWithSecret, error) {
	acc, err := s.store.FindCredentialsByEmail(ctx, email)
	if err != nil {
		return models.AccountWithSecret{}, lookupErr(err, email)
	}
	return acc, nil
}

func (s *Service) withToken(acc models.Account) (AuthResult, error) {
	token, err := s.tokens.Issue(auth.Identity{UserID: acc.ID, Name: acc.Name})
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Account: acc, Token: token}, nil
}

func lookupErr(err error, email string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.New(apperr.NotFound, "No account with email: "+email)
	}
	return apperr.Wrap(apperr.Internal, "lookup account", err)
}

func validateName(name string) []string {
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return []string{"Name must be between 3 and 20 characters"}
	}
	return nil
}

func validateEmail(email string) []string {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []string{"Please provide a valid email"}
	}
	return nil
}
