package services

import (
	"context"
	"mime/multipart"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

type UserService interface {
	Profile(userID string) (*models.User, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	// UpdateAvatar runs the media pipeline and only then writes the
	// new filename to the user record, so the record never points at
	// files that were not written.
	UpdateAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
}

type userService struct {
	userRepo repositories.UserRepository
	avatars  AvatarService
	validate *validator.Validator
}

func NewUserService(userRepo repositories.UserRepository, avatars AvatarService, validate *validator.Validator) UserService {
	return &userService{
		userRepo: userRepo,
		avatars:  avatars,
		validate: validate,
	}
}

func (s *userService) Profile(userID string) (*models.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := make(validator.FieldErrors)
	if err := s.validate.Validate(req); err != nil {
		vErr, ok := err.(*validator.ValidationError)
		if !ok {
			return nil, apperrors.InternalError(err)
		}
		fields = vErr.Fields
	}

	// Email must stay unique, excluding the user's own record.
	if _, taken := fields["email"]; !taken && req.Email != "" {
		exists, err := s.userRepo.EmailTaken(req.Email, userID)
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

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Designation = req.Designation
	user.Mobile = req.Mobile
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}

	name, err := s.avatars.Replace(ctx, user, file)
	if err != nil {
		// The current avatar field is left unchanged on any failure.
		return "", err
	}

	if err := s.userRepo.UpdateAvatar(userID, name); err != nil {
		return "", apperrors.DatabaseError(err)
	}

	return name, nil
}
