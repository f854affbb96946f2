package services

import (
	"context"
	"net/mail"
	"strings"

	"siddeshlogistics/apperror"
	"siddeshlogistics/models"
	"siddeshlogistics/repository"

	"golang.org/x/crypto/bcrypt"
)

const DefaultRole = "owner"

type UserService struct {
	Users repository.UserRepository
	cost  int
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{Users: users, cost: bcrypt.DefaultCost}
}

// Signup validates and stores a new owner with a bcrypt password hash.
func (s *UserService) Signup(ctx context.Context, user models.AppUser) (*models.AppUser, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" || user.Email == "" || user.Password == "" {
		return nil, apperror.NewValidationError("Name, email, and password are required")
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return nil, apperror.NewValidationError("email is not valid")
	}
	if user.Role == "" {
		user.Role = DefaultRole
	}

	existing, err := s.Users.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperror.NewPersistenceError("look up user", err)
	}
	if existing != nil {
		return nil, apperror.NewConflictError("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.cost)
	if err != nil {
		return nil, apperror.NewValidationError("password cannot be used: " + err.Error())
	}
	user.Password = string(hash)

	if err := s.Users.CreateUser(ctx, &user); err != nil {
		return nil, apperror.NewPersistenceError("create user", err)
	}
	user.Password = "" // hide password hash
	return &user, nil
}

// Login checks the credentials and returns the user without its hash.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.AppUser, error) {
	user, err := s.Users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperror.NewPersistenceError("look up user", err)
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}
	user.Password = ""
	return user, nil
}
