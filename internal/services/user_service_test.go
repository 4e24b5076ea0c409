package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/imaging"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/services"
	"github.com/AlMamunFarhad/job-portal/internal/storage"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
)

func newUserService(t *testing.T) (services.UserService, *gorm.DB, string) {
	db := setupDB(t)
	publicRoot := t.TempDir()

	store, err := storage.NewLocalStorage(publicRoot)
	require.NoError(t, err)

	processor := imaging.NewProcessor(imaging.ThumbnailSide)
	avatars := services.NewAvatarService(store, processor, 10<<20)
	userRepo := repositories.NewUserRepository(db)
	return services.NewUserService(userRepo, avatars, newValidator()), db, publicRoot
}

func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 42, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestUpdateAvatarRoundTrip(t *testing.T) {
	svc, db, publicRoot := newUserService(t)
	user := createUser(t, db, "Mamun", "mamun@example.com")

	file := makeFileHeader(t, "photo.jpg", testJPEG(t, 500, 300))
	name, err := svc.UpdateAvatar(context.Background(), user.ID, file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, user.ID+"_"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// The original is stored unmodified.
	original, err := os.ReadFile(filepath.Join(publicRoot, "profile_img", name))
	require.NoError(t, err)
	assert.Equal(t, testJPEG(t, 500, 300), original)

	// The thumbnail is exactly 150x150, PNG-encoded.
	thumbFile, err := os.Open(filepath.Join(publicRoot, "profile_img", "thumb", name))
	require.NoError(t, err)
	defer thumbFile.Close()
	thumb, format, err := image.Decode(thumbFile)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 150, thumb.Bounds().Dx())
	assert.Equal(t, 150, thumb.Bounds().Dy())

	// The record points at the new pair, updated last.
	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, name, stored.Image)
}

func TestUpdateAvatarReplacesPreviousPair(t *testing.T) {
	svc, db, publicRoot := newUserService(t)
	user := createUser(t, db, "Mamun", "mamun@example.com")

	first, err := svc.UpdateAvatar(context.Background(), user.ID, makeFileHeader(t, "a.jpg", testJPEG(t, 500, 300)))
	require.NoError(t, err)

	second, err := svc.UpdateAvatar(context.Background(), user.ID, makeFileHeader(t, "b.jpg", testJPEG(t, 300, 500)))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// The previous original and thumbnail no longer exist on disk.
	_, err = os.Stat(filepath.Join(publicRoot, "profile_img", first))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(publicRoot, "profile_img", "thumb", first))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(publicRoot, "profile_img", second))
	assert.NoError(t, err)
}

func TestUpdateAvatarInvalidImage(t *testing.T) {
	svc, db, publicRoot := newUserService(t)
	user := createUser(t, db, "Mamun", "mamun@example.com")

	valid, err := svc.UpdateAvatar(context.Background(), user.ID, makeFileHeader(t, "a.jpg", testJPEG(t, 200, 200)))
	require.NoError(t, err)

	// A spoofed extension does not get past content sniffing, and the
	// current avatar stays untouched.
	_, err = svc.UpdateAvatar(context.Background(), user.ID, makeFileHeader(t, "evil.png", []byte("not an image at all")))
	assert.ErrorIs(t, err, imaging.ErrInvalidImage)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, valid, stored.Image)

	_, err = os.Stat(filepath.Join(publicRoot, "profile_img", valid))
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	svc, db, _ := newUserService(t)
	user := createUser(t, db, "Mamun", "mamun@example.com")
	createUser(t, db, "Other", "other@example.com")

	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Name:        "Mamun Farhad",
		Email:       "mamun@example.com",
		Designation: "Engineer",
		Mobile:      "01700000000",
	})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "Mamun Farhad", stored.Name)
	assert.Equal(t, "Engineer", stored.Designation)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc, db, _ := newUserService(t)
	user := createUser(t, db, "Mamun", "mamun@example.com")
	createUser(t, db, "Other", "other@example.com")

	// Name outside 4-30 chars.
	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Name: "ab", Email: "mamun@example.com"})
	var vErr *validator.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")

	// Email unique excluding self: taking another user's email fails,
	// keeping one's own passes (covered above).
	_, err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Name: "Mamun Farhad", Email: "other@example.com"})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "email")
}
