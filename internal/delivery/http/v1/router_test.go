package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-jobboard-backend/config"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/validation"
)

const testPassword = "password123"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seed, err := memory.DefaultSeed()
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	seed.SetPasswordHash(string(hash))

	store := memory.NewStore(seed)
	userRepo := memory.NewUserRepository(store)
	jobRepo := memory.NewJobRepository(store)
	appRepo := memory.NewApplicationRepository(store)
	profileRepo := memory.NewProfileRepository(store)
	tokens := auth.NewTokenIssuer("test-secret", "test", time.Hour)

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(userRepo, memory.NewSessionStore(), tokens, true),
		JobUC:         usecase.NewJobUsecase(jobRepo, profileRepo, userRepo),
		ApplicationUC: usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo),
		ProfileUC:     usecase.NewProfileUsecase(profileRepo, userRepo, validation.New()),
		CompanyUC:     usecase.NewCompanyUsecase(profileRepo),
		DashboardUC:   usecase.NewDashboardUsecase(jobRepo, appRepo, profileRepo),
		HealthUC:      usecase.NewHealthUsecase(nil),
		Tokens:        tokens,
		Config: &config.Config{
			AppEnv:                   "test",
			RateLimitWindowSeconds:   60,
			RateLimitAuthThreshold:   100,
			RateLimitGlobalThreshold: 1000,
		},
	})
}

func do(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func login(t *testing.T, r http.Handler, email string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"email": email, "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session domain.Session
	decode(t, w, &session)
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"email": "john.doe@example.com", "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code)
	var session domain.Session
	decode(t, w, &session)
	assert.Equal(t, "user1", session.User.ID)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth_token=")

	w = do(t, r, http.MethodGet, "/v1/auth/me", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me domain.User
	decode(t, w, &me)
	assert.Equal(t, "john.doe@example.com", me.Email)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	w = do(t, r, http.MethodPost, "/v1/auth/logout", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/v1/auth/me", session.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthErrors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("wrong password", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"email": "john.doe@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decode(t, w, nil)
		assert.False(t, env.Success)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{"email": "john.doe@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/register", "", gin.H{
			"email": "JOHN.DOE@example.com", "password": "secret1", "name": "John Again", "role": "jobseeker",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid role", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/register", "", gin.H{
			"email": "new@example.com", "password": "secret1", "name": "New User", "role": "admin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reset unknown email", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/auth/reset-password", "", gin.H{"email": "ghost@example.com"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/dashboard", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/dashboard", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRegisterStartsSession(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/v1/auth/register", "", gin.H{
		"email": "new.seeker@example.com", "password": "secret1", "name": "New Seeker", "role": "jobseeker",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var session domain.Session
	decode(t, w, &session)
	assert.Equal(t, "user3", session.User.ID)
	assert.False(t, session.User.ProfileComplete)

	w = do(t, r, http.MethodGet, "/v1/jobseekers/applications", session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var apps []domain.Application
	decode(t, w, &apps)
	assert.Empty(t, apps)
}

func TestListJobs(t *testing.T) {
	r := newTestRouter(t)

	jobIDs := func(w *httptest.ResponseRecorder) []string {
		var jobs []domain.Job
		decode(t, w, &jobs)
		ids := make([]string, 0, len(jobs))
		for _, j := range jobs {
			ids = append(ids, j.ID)
		}
		return ids
	}

	w := do(t, r, http.MethodGet, "/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"job1", "job2", "job3", "job4"}, jobIDs(w))

	w = do(t, r, http.MethodGet, "/v1/jobs?work_mode=hybrid", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"job1", "job4"}, jobIDs(w))

	w = do(t, r, http.MethodGet, "/v1/jobs?work_mode=remote,onsite&location=maharashtra", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"job2"}, jobIDs(w))

	w = do(t, r, http.MethodGet, "/v1/jobs?search=python", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"job3"}, jobIDs(w))

	w = do(t, r, http.MethodGet, "/v1/jobs?salary_min=2000000&salary_max=1000000", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, jobIDs(w))

	w = do(t, r, http.MethodGet, "/v1/jobs?salary_min=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/v1/jobs/job3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var job domain.Job
	decode(t, w, &job)
	assert.Equal(t, "Data Scientist", job.Title)

	w = do(t, r, http.MethodGet, "/v1/jobs/job99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostJob(t *testing.T) {
	r := newTestRouter(t)
	employer := login(t, r, "hr@techcorp.com")
	seeker := login(t, r, "john.doe@example.com")

	body := gin.H{
		"title":       "Backend Engineer",
		"location":    "Chennai, Tamil Nadu",
		"description": "Build APIs.",
		"skills":      []string{"Go", "PostgreSQL"},
		"salary":      gin.H{"min": 1000000, "max": 1500000},
		"deadline":    "2030-01-31",
	}

	w := do(t, r, http.MethodPost, "/v1/jobs", seeker, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPost, "/v1/jobs", employer, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var job domain.Job
	decode(t, w, &job)
	assert.Equal(t, "job5", job.ID)
	assert.Equal(t, "employer1", job.Company.ID)
	assert.Equal(t, domain.JobTypeFullTime, job.JobType)
	assert.Equal(t, "INR", job.Salary.Currency)
	assert.True(t, job.IsActive)

	w = do(t, r, http.MethodGet, "/v1/employers/jobs", employer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var jobs []domain.Job
	decode(t, w, &jobs)
	assert.Len(t, jobs, 3)

	body["salary"] = gin.H{"min": 2000000, "max": 1000000}
	w = do(t, r, http.MethodPost, "/v1/jobs", employer, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApply(t *testing.T) {
	r := newTestRouter(t)
	seeker := login(t, r, "jane.smith@example.com")
	employer := login(t, r, "hr@techcorp.com")

	w := do(t, r, http.MethodPost, "/v1/jobs/job1/apply", seeker, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var app domain.Application
	decode(t, w, &app)
	assert.Equal(t, "app3", app.ID)
	assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	assert.Equal(t, domain.DefaultResumeURL, app.ResumeURL)

	w = do(t, r, http.MethodPost, "/v1/jobs/job1/apply", seeker, gin.H{"coverLetter": "Again"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/v1/jobs/job99/apply", seeker, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/v1/jobs/job3/apply", employer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/v1/jobseekers/applications", seeker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var apps []domain.Application
	decode(t, w, &apps)
	require.Len(t, apps, 2)
	assert.Equal(t, "app2", apps[0].ID)
	assert.Equal(t, "app3", apps[1].ID)

	w = do(t, r, http.MethodGet, "/v1/jobs/job1", "", nil)
	var job domain.Job
	decode(t, w, &job)
	assert.Equal(t, 46, job.ApplicationsCount)
}

func TestEmployerApplications(t *testing.T) {
	r := newTestRouter(t)
	owner := login(t, r, "hr@techcorp.com")
	other := login(t, r, "careers@innovateinc.com")

	w := do(t, r, http.MethodGet, "/v1/employers/jobs/job1/applications", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var apps []domain.Application
	decode(t, w, &apps)
	require.Len(t, apps, 1)
	assert.Equal(t, "app1", apps[0].ID)

	w = do(t, r, http.MethodGet, "/v1/employers/jobs/job1/applications", other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPatch, "/v1/employers/applications/app1", other, gin.H{"status": "hired"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodPatch, "/v1/employers/applications/app1", owner, gin.H{"status": "promoted"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPatch, "/v1/employers/applications/app99", owner, gin.H{"status": "hired"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPatch, "/v1/employers/applications/app1", owner, gin.H{"status": "hired", "notes": "Offer sent"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/employers/jobs/job1/applications", owner, nil)
	decode(t, w, &apps)
	assert.Equal(t, domain.ApplicationStatusHired, apps[0].Status)
	require.NotNil(t, apps[0].Notes)
	assert.Equal(t, "Offer sent", *apps[0].Notes)
}

func TestExportApplications(t *testing.T) {
	r := newTestRouter(t)
	owner := login(t, r, "hr@techcorp.com")

	w := do(t, r, http.MethodGet, "/v1/employers/jobs/job1/applications/export?format=csv", owner, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="job1_applications_`)
	assert.Contains(t, w.Body.String(), "app1")

	w = do(t, r, http.MethodGet, "/v1/employers/jobs/job1/applications/export", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = do(t, r, http.MethodGet, "/v1/employers/jobs/job1/applications/export?format=pdf", owner, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfilesAndCompanies(t *testing.T) {
	r := newTestRouter(t)
	seeker := login(t, r, "john.doe@example.com")
	employer := login(t, r, "hr@techcorp.com")

	w := do(t, r, http.MethodGet, "/v1/profile/jobseeker", seeker, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile domain.JobSeekerProfile
	decode(t, w, &profile)
	assert.Equal(t, "user1", profile.UserID)
	assert.Equal(t, "John Doe", profile.Name)

	w = do(t, r, http.MethodGet, "/v1/profile/jobseeker", employer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	profile.Headline = "Staff Engineer"
	w = do(t, r, http.MethodPut, "/v1/profile/jobseeker", seeker, profile)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/v1/profile/jobseeker", seeker, nil)
	decode(t, w, &profile)
	assert.Equal(t, "Staff Engineer", profile.Headline)

	w = do(t, r, http.MethodGet, "/v1/companies", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var companies []domain.EmployerProfile
	decode(t, w, &companies)
	assert.Len(t, companies, 2)

	w = do(t, r, http.MethodGet, "/v1/companies/employer2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/v1/companies/user1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboard(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/dashboard", login(t, r, "jane.smith@example.com"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var seekerDash domain.JobSeekerDashboard
	decode(t, w, &seekerDash)
	assert.Len(t, seekerDash.Applications, 1)

	w = do(t, r, http.MethodGet, "/v1/dashboard", login(t, r, "hr@techcorp.com"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var employerDash domain.EmployerDashboard
	decode(t, w, &employerDash)
	assert.Len(t, employerDash.Jobs, 2)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = do(t, r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
