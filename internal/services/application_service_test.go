package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/models"
	"github.com/AlMamunFarhad/job-portal/internal/repositories"
	"github.com/AlMamunFarhad/job-portal/internal/services"
	"github.com/AlMamunFarhad/job-portal/pkg/apperrors"
)

func newApplicationService(t *testing.T) (services.ApplicationService, services.JobService, *gorm.DB) {
	db := setupDB(t)
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	lookupRepo := repositories.NewLookupRepository(db)
	jobSvc := services.NewJobService(jobRepo, lookupRepo, newValidator())
	return services.NewApplicationService(appRepo, jobRepo), jobSvc, db
}

func TestApply(t *testing.T) {
	svc, jobSvc, db := newApplicationService(t)
	owner := createUser(t, db, "Owner", "owner@example.com")
	seeker := createUser(t, db, "Seeker", "seeker@example.com")
	category, jobType := createLookups(t, db)

	job, err := jobSvc.Create(owner.ID, validJobRequest(category.ID, jobType.ID))
	require.NoError(t, err)

	app, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, seeker.ID, app.UserID)
	assert.Equal(t, job.ID, app.JobID)

	// Applying twice is a conflict.
	_, err = svc.Apply(seeker.ID, job.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestApplyOwnJob(t *testing.T) {
	svc, jobSvc, db := newApplicationService(t)
	owner := createUser(t, db, "Owner", "owner@example.com")
	category, jobType := createLookups(t, db)

	job, err := jobSvc.Create(owner.ID, validJobRequest(category.ID, jobType.ID))
	require.NoError(t, err)

	_, err = svc.Apply(owner.ID, job.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestApplyMissingJob(t *testing.T) {
	svc, _, db := newApplicationService(t)
	seeker := createUser(t, db, "Seeker", "seeker@example.com")

	_, err := svc.Apply(seeker.ID, "no-such-job")
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestRemoveApplication(t *testing.T) {
	svc, jobSvc, db := newApplicationService(t)
	owner := createUser(t, db, "Owner", "owner@example.com")
	seeker := createUser(t, db, "Seeker", "seeker@example.com")
	other := createUser(t, db, "Other", "other@example.com")
	category, jobType := createLookups(t, db)

	job, err := jobSvc.Create(owner.ID, validJobRequest(category.ID, jobType.ID))
	require.NoError(t, err)
	app, err := svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)

	// Another user cannot remove it; soft not-found, record survives.
	err = svc.Remove(other.ID, app.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)

	var count int64
	require.NoError(t, db.Model(&models.JobApplication{}).Where("id = ?", app.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.Remove(seeker.ID, app.ID))
	err = svc.Remove(seeker.ID, app.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestAppliedJobsOrphanNullFilled(t *testing.T) {
	svc, jobSvc, db := newApplicationService(t)
	owner := createUser(t, db, "Owner", "owner@example.com")
	seeker := createUser(t, db, "Seeker", "seeker@example.com")
	category, jobType := createLookups(t, db)

	job, err := jobSvc.Create(owner.ID, validJobRequest(category.ID, jobType.ID))
	require.NoError(t, err)
	_, err = svc.Apply(seeker.ID, job.ID)
	require.NoError(t, err)

	// Deleting the job orphans the application; listing must not fail
	// and the job comes back null-filled.
	require.NoError(t, jobSvc.Delete(owner.ID, job.ID))

	apps, total, err := svc.ListMine(seeker.ID, 1, 6)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, apps, 1)
	assert.Nil(t, apps[0].Job)
}
