package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Althaj-p/Ecom-Backend/entity"
	"github.com/Althaj-p/Ecom-Backend/repository"
	"github.com/Althaj-p/Ecom-Backend/utils"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Role:        "customer",
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.UserRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}

// ---------------- Addresses ----------------

type AddressIn struct {
	AddressLine1 string `json:"address_line_1" binding:"required"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
	IsDefault    bool   `json:"is_default"`
}

func (s *AuthService) ListAddresses(userID uint) ([]entity.Address, error) {
	return s.UserRepo.ListAddresses(userID)
}

func (s *AuthService) GetAddress(userID, addressID uint) (*entity.Address, error) {
	a, err := s.UserRepo.GetAddressForUser(userID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAddressNotFound
	}
	return a, err
}

func (s *AuthService) CreateAddress(userID uint, in *AddressIn) (*entity.Address, error) {
	a := &entity.Address{
		UserID:       userID,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		Country:      in.Country,
		PostalCode:   in.PostalCode,
		IsDefault:    in.IsDefault,
	}
	if err := s.UserRepo.CreateAddress(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AuthService) UpdateAddress(userID, addressID uint, in *AddressIn) (*entity.Address, error) {
	affected, err := s.UserRepo.UpdateAddress(userID, addressID, map[string]any{
		"address_line1": in.AddressLine1,
		"address_line2": in.AddressLine2,
		"city":          in.City,
		"state":         in.State,
		"country":       in.Country,
		"postal_code":   in.PostalCode,
		"is_default":    in.IsDefault,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAddressNotFound
	}
	return s.GetAddress(userID, addressID)
}

// DeleteAddress removes the address; orders that referenced it keep a nil
// shipping address rather than disappearing.
func (s *AuthService) DeleteAddress(userID, addressID uint) error {
	affected, err := s.UserRepo.DeleteAddress(userID, addressID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
