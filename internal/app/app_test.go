package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AlMamunFarhad/job-portal/internal/app"
	"github.com/AlMamunFarhad/job-portal/internal/config"
	"github.com/AlMamunFarhad/job-portal/internal/models"
)

type statusResponse struct {
	Status bool                `json:"status"`
	Errors map[string][]string `json:"errors"`
	Data   json.RawMessage     `json:"data"`
}

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, app.Migrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxSize = 10 << 20
	cfg.Pagination.JobsPageSize = 5
	cfg.Pagination.ApplicationsPageSize = 6
	cfg.Pagination.AdminPageSize = 20

	router, err := app.SetupRouter(cfg, db)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, db
}

func postForm(t *testing.T, server *httptest.Server, path, token string, form url.Values) (*http.Response, statusResponse) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, server.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var body statusResponse
	_ = json.NewDecoder(res.Body).Decode(&body)
	return res, body
}

func register(t *testing.T, server *httptest.Server, name, email string) {
	t.Helper()
	res, body := postForm(t, server, "/api/v1/auth/register", "", url.Values{
		"name":             {name},
		"email":            {email},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, body.Status)
}

func login(t *testing.T, server *httptest.Server, email string) string {
	t.Helper()
	res, body := postForm(t, server, "/api/v1/auth/login", "", url.Values{
		"email":    {email},
		"password": {"secret"},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func seedLookups(t *testing.T, db *gorm.DB) (string, string) {
	t.Helper()
	category := &models.Category{Name: "Engineering", Status: true}
	require.NoError(t, db.Create(category).Error)
	jobType := &models.JobType{Name: "Full Time", Status: true}
	require.NoError(t, db.Create(jobType).Error)
	return category.ID, jobType.ID
}

func jobForm(categoryID, jobTypeID string) url.Values {
	return url.Values{
		"title":       {"Senior Gopher"},
		"category":    {categoryID},
		"jobType":     {jobTypeID},
		"vacancy":     {"2"},
		"location":    {"Remote"},
		"description": {"Write Go services"},
		"experience":  {"3 years"},
		"companyName": {"Acme Inc"},
	}
}

func TestRegisterEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	// Success: status true, empty error map.
	res, body := postForm(t, server, "/api/v1/auth/register", "", url.Values{
		"name":             {"Mamun"},
		"email":            {"mamun@example.com"},
		"password":         {"secret"},
		"confirm_password": {"secret"},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, body.Status)
	assert.Empty(t, body.Errors)

	// Invalid submission: status false, field-keyed errors.
	res, body = postForm(t, server, "/api/v1/auth/register", "", url.Values{
		"email": {"not-an-email"},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.False(t, body.Status)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
}

func TestJobEndpoints(t *testing.T) {
	server, db := newTestServer(t)
	categoryID, jobTypeID := seedLookups(t, db)

	register(t, server, "Owner", "owner@example.com")
	register(t, server, "Other", "other@example.com")
	ownerToken := login(t, server, "owner@example.com")
	otherToken := login(t, server, "other@example.com")

	// Unauthenticated create is rejected.
	res, _ := postForm(t, server, "/api/v1/account/jobs", "", jobForm(categoryID, jobTypeID))
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Owner creates a job.
	res, body := postForm(t, server, "/api/v1/account/jobs", ownerToken, jobForm(categoryID, jobTypeID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.True(t, body.Status)

	var job models.Job
	require.NoError(t, db.First(&job, "title = ?", "Senior Gopher").Error)

	// Invalid update: field errors, nothing mutated.
	badForm := jobForm(categoryID, jobTypeID)
	badForm.Set("title", "abc")
	res, body = postForm(t, server, "/api/v1/account/jobs/"+job.ID, ownerToken, badForm)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.False(t, body.Status)
	assert.Contains(t, body.Errors, "title")

	// Cross-user delete: soft status=true response, job survives.
	res, body = postForm(t, server, "/api/v1/account/jobs/delete", otherToken, url.Values{"job_id": {job.ID}})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, body.Status)

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Cross-user update is a hard Forbidden.
	res, _ = postForm(t, server, "/api/v1/account/jobs/"+job.ID, otherToken, jobForm(categoryID, jobTypeID))
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Owner delete succeeds, then reports the soft not-found shape.
	res, body = postForm(t, server, "/api/v1/account/jobs/delete", ownerToken, url.Values{"job_id": {job.ID}})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, body.Status)

	res, body = postForm(t, server, "/api/v1/account/jobs/delete", ownerToken, url.Values{"job_id": {job.ID}})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, body.Status)
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	server, db := newTestServer(t)

	register(t, server, "Plain User", "user@example.com")
	token := login(t, server, "user@example.com")

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/admin/jobs", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Promote and retry.
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "user@example.com").
		Update("role", models.UserRoleAdmin).Error)
	adminToken := login(t, server, "user@example.com")

	req, err = http.NewRequest(http.MethodGet, server.URL+"/api/v1/admin/jobs", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
