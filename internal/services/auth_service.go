package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"tienda/internal/apperr"
	"tienda/internal/domain"
	"tienda/internal/repos"
	"tienda/internal/token"
	"tienda/internal/validate"
)

const bcryptCost = 10

type AuthService struct {
	Users  repos.UserRepo
	Tokens *token.Manager
}

// AuthResult is what both register and login hand back: a signed token
// plus the public view of the user.
type AuthResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	if email == "" || password == "" || name == "" {
		return nil, apperr.BadRequest("missing_fields", "email, password and name are required")
	}
	if !validate.Email(email) {
		return nil, apperr.BadRequest("invalid_email", "email format is not valid")
	}
	if !validate.Password(password) {
		return nil, apperr.BadRequest("invalid_password", "password must be at least 6 characters")
	}

	_, err := s.Users.GetByEmail(ctx, email)
	if err == nil {
		return nil, apperr.Conflict("user_exists", "a user with this email is already registered")
	}
	if !errors.Is(err, repos.ErrNotFound) {
		return nil, apperr.Internal("could not register the user")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal("could not register the user")
	}

	u, err := s.Users.Create(ctx, domain.User{Email: email, Password: string(digest), Name: name})
	if err != nil {
		return nil, apperr.Internal("could not register the user")
	}

	tok, err := s.Tokens.Sign(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("could not register the user")
	}
	return &AuthResult{Token: tok, User: u.Public()}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperr.BadRequest("missing_fields", "email and password are required")
	}
	if !validate.Email(email) {
		return nil, apperr.BadRequest("invalid_email", "email format is not valid")
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repos.ErrNotFound) {
		return nil, apperr.Unauthorized("invalid_credentials", "incorrect email or password")
	}
	if err != nil {
		return nil, apperr.Internal("could not process the login")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, apperr.Unauthorized("invalid_credentials", "incorrect email or password")
	}

	tok, err := s.Tokens.Sign(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("could not process the login")
	}
	return &AuthResult{Token: tok, User: u.Public()}, nil
}
