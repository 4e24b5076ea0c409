package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AlMamunFarhad/job-portal/internal/auth"
	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/email"
	"github.com/AlMamunFarhad/job-portal/internal/logger"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

const resetTokenTTL = time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (token string, user *models.User, err error)
	ForgotPassword(req *dto.ForgotPasswordRequest) error
	ResetPassword(req *dto.ResetPasswordRequest) error
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	mailer   email.Sender
	validate *validator.Validator
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, mailer email.Sender, validate *validator.Validator) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		validate: validate,
	}
}

// Register creates a user with a bcrypt-hashed password. The plaintext
// password is never persisted.
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	fields := make(validator.FieldErrors)
	if err := s.validate.Validate(req); err != nil {
		vErr, ok := err.(*validator.ValidationError)
		if !ok {
			return nil, apperrors.InternalError(err)
		}
		fields = vErr.Fields
	}

	if _, taken := fields["email"]; !taken && req.Email != "" {
		exists, err := s.userRepo.EmailTaken(req.Email, "")
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		if exists {
			fields.Add("email", "The email has already been taken")
		}
	}

	if !fields.Empty() {
		return nil, &validator.ValidationError{Fields: fields}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			fields.Add("email", "The email has already been taken")
			return nil, &validator.ValidationError{Fields: fields}
		}
		return nil, apperrors.DatabaseError(err)
	}

	return user, nil
}

// Login verifies credentials and issues an access token. Bad
// credentials surface as a page-level auth error, never a field error.
func (s *authService) Login(req *dto.LoginRequest) (string, *models.User, error) {
	if err := s.validate.Validate(req); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return "", nil, apperrors.InvalidCredentialsError()
		}
		return "", nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return "", nil, apperrors.InvalidCredentialsError()
	}

	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	return token, user, nil
}

func (s *authService) ForgotPassword(req *dto.ForgotPasswordRequest) error {
	if err := s.validate.Validate(req); err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return repositories.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}

	token := uuid.NewString()
	exp := time.Now().Add(resetTokenTTL)
	user.ResetToken = token
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.DatabaseError(err)
	}

	body := fmt.Sprintf("<p>Hello %s,</p><p>Use the token below to reset your password. It expires in one hour.</p><p><strong>%s</strong></p>", user.Name, token)
	if err := s.mailer.Send(user.Email, "Reset your password", body); err != nil {
		logger.Error("failed to send reset email", "user_id", user.ID, "err", err)
		return apperrors.Wrap(err, apperrors.CodeInternalError, "email", "Failed to send reset email", 500)
	}

	return nil
}

func (s *authService) ResetPassword(req *dto.ResetPasswordRequest) error {
	if err := s.validate.Validate(req); err != nil {
		return err
	}

	user, err := s.userRepo.FindByResetToken(req.Token)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.New(apperrors.CodeInvalidToken, "auth", "Invalid reset token", 401)
		}
		return apperrors.DatabaseError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.New(apperrors.CodeTokenExpired, "auth", "Reset token expired", 401)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.DatabaseError(err)
	}

	return nil
}
