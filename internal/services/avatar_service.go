package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlMamunFarhad/job-portal/internal/imaging"
	"github.com/AlMamunFarhad/job-portal/internal/logger"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/storage"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

// File layout under the public root.
const (
	OriginalsDir  = "profile_img"
	ThumbnailsDir = "profile_img/thumb"
)

// AvatarService turns one uploaded image into a stored original plus a
// derived 150×150 PNG thumbnail, replacing any prior avatar pair.
// It only touches files; updating the user record is the caller's
// last step, so a failure here never leaves the record pointing at
// missing files.
type AvatarService interface {
	Replace(ctx context.Context, user *models.User, file *multipart.FileHeader) (string, error)
}

type avatarService struct {
	storage   storage.Storage
	processor *imaging.Processor
	maxSize   int64
}

func NewAvatarService(store storage.Storage, processor *imaging.Processor, maxSize int64) AvatarService {
	return &avatarService{
		storage:   store,
		processor: processor,
		maxSize:   maxSize,
	}
}

func (s *avatarService) Replace(ctx context.Context, user *models.User, file *multipart.FileHeader) (string, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", imaging.ErrInvalidImage
	}

	src, err := file.Open()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "media", "Failed to read upload", 500)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "media", "Failed to read upload", 500)
	}

	// Content sniffing; the filename extension alone is not trusted.
	format, err := imaging.Sniff(bytes.NewReader(data))
	if err != nil {
		return "", imaging.ErrInvalidImage
	}

	name := s.filename(user.ID, file.Filename, format)
	originalPath := path.Join(OriginalsDir, name)
	thumbPath := path.Join(ThumbnailsDir, name)

	// Original bytes are persisted unmodified.
	if err := s.storage.Save(ctx, originalPath, bytes.NewReader(data)); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "media", "Failed to store image", 500)
	}

	thumb, err := s.processor.Thumbnail(bytes.NewReader(data))
	if err != nil {
		s.discard(ctx, originalPath)
		return "", imaging.ErrInvalidImage
	}

	if err := s.storage.Save(ctx, thumbPath, thumb); err != nil {
		s.discard(ctx, originalPath)
		return "", apperrors.Wrap(err, apperrors.CodeStorageError, "media", "Failed to store thumbnail", 500)
	}

	// The old pair goes only after the new one is fully written. A
	// missing old file is not a failure.
	if user.Image != "" {
		if err := s.storage.Delete(ctx, path.Join(OriginalsDir, user.Image)); err != nil {
			logger.Warn("failed to delete previous avatar", "user_id", user.ID, "file", user.Image, "err", err)
		}
		if err := s.storage.Delete(ctx, path.Join(ThumbnailsDir, user.Image)); err != nil {
			logger.Warn("failed to delete previous thumbnail", "user_id", user.ID, "file", user.Image, "err", err)
		}
	}

	return name, nil
}

// filename derives {userID}_{unixSeconds}_{suffix}{ext}. The random
// suffix disambiguates same-second re-uploads by one user.
func (s *avatarService) filename(userID, original, format string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = "." + format
	}
	return fmt.Sprintf("%s_%d_%s%s", userID, time.Now().Unix(), randomSuffix(), ext)
}

func randomSuffix() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (s *avatarService) discard(ctx context.Context, p string) {
	if err := s.storage.Delete(ctx, p); err != nil {
		logger.Warn("failed to discard partial avatar write", "path", p, "err", err)
	}
}
