package services

import (
	"context"
	"errors"

	"github.com/abdbabti01/GoHardAPI-sub000/models"
	"github.com/abdbabti01/GoHardAPI-sub000/utils"

	"gorm.io/gorm"
)

// AuthService is the authentication collaborator: it only mints identities
// for the rest of the API and is deliberately minimal.
type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "credentials", Reason: "email and password are required"}
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:     email,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials and returns a signed token.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", &ValidationError{Field: "credentials", Reason: "incorrect email or password"}
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
