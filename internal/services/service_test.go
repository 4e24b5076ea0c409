package services_test

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/auth"
	"github.com/AlMamunFarhad/job-portal/internal/dto"
	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/validator"
)

// setupDB opens an in-memory sqlite database with the full schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.JobType{},
		&models.Job{},
		&models.JobApplication{},
	))

	return db
}

func newValidator() *validator.Validator {
	return validator.New()
}

func createUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password")
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createLookups(t *testing.T, db *gorm.DB) (*models.Category, *models.JobType) {
	t.Helper()

	category := &models.Category{Name: "Engineering", Status: true}
	require.NoError(t, db.Create(category).Error)

	jobType := &models.JobType{Name: "Full Time", Status: true}
	require.NoError(t, db.Create(jobType).Error)

	return category, jobType
}

func validJobRequest(categoryID, jobTypeID string) *dto.JobRequest {
	return &dto.JobRequest{
		Title:       "Senior Gopher",
		Category:    categoryID,
		JobType:     jobTypeID,
		Vacancy:     "2",
		Location:    "Remote",
		Description: "Write Go services",
		Experience:  "3 years",
		CompanyName: "Acme Inc",
	}
}

// makeFileHeader builds a real *multipart.FileHeader the way gin would
// hand it to a handler.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}
