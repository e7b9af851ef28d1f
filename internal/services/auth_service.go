package services

import (
	"fmt"
	"strings"
	"time"

	"shopterm/internal/models"
	"shopterm/internal/repositories"
	"shopterm/internal/utils"

	"github.com/go-playground/validator/v10"
)

// RegisterInput is the sign-up form payload.
type RegisterInput struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=4"`
}

type AuthService struct {
	userRepo     *repositories.UserRepository
	customerRepo *repositories.CustomerRepository
	sessionRepo  *repositories.SessionRepository
	validate     *validator.Validate
}

func NewAuthService(
	userRepo *repositories.UserRepository,
	customerRepo *repositories.CustomerRepository,
	sessionRepo *repositories.SessionRepository,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
		validate:     validator.New(),
	}
}

// Register creates a customer account and returns (uid, cid); the two are
// always equal.
func (s *AuthService) Register(input RegisterInput) (int, int, error) {
	if err := s.validate.Struct(input); err != nil {
		return 0, 0, fmt.Errorf("invalid registration input: %w", err)
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	available, err := s.customerRepo.EmailAvailable(input.Email)
	if err != nil {
		return 0, 0, err
	}
	if !available {
		return 0, 0, ErrEmailTaken
	}

	uid, err := s.userRepo.AllocateUID()
	if err != nil {
		return 0, 0, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return 0, 0, err
	}

	user := &models.User{UID: uid, Pwd: hash, Role: models.RoleCustomer}
	customer := &models.Customer{CID: uid, Name: input.Name, Email: input.Email}
	if err := s.userRepo.CreateCustomerAccount(user, customer); err != nil {
		return 0, 0, err
	}

	return uid, uid, nil
}

// Login verifies credentials and returns the user.
func (s *AuthService) Login(uid int, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := utils.VerifyPassword(user.Pwd, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EmailAvailable reports whether the email can still be registered.
func (s *AuthService) EmailAvailable(email string) (bool, error) {
	return s.customerRepo.EmailAvailable(email)
}

func (s *AuthService) GetUser(uid int) (*models.User, error) {
	user, err := s.userRepo.FindByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) GetCustomer(uid int) (*models.Customer, error) {
	return s.customerRepo.FindByUID(uid)
}

// StartSession opens a browsing session for a customer and returns its
// session number.
func (s *AuthService) StartSession(cid int, at time.Time) (int, error) {
	return s.sessionRepo.Start(cid, at)
}

// EndSession closes a session; called on logout and on quit.
func (s *AuthService) EndSession(cid, sessionNo int, at time.Time) error {
	return s.sessionRepo.End(cid, sessionNo, at)
}
