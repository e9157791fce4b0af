package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - the catalog is browsable without a session
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	employerOnly := middleware.RequireRole(domain.RoleEmployer)
	protected.POST("/jobs", employerOnly, handler.Create)

	// Employer-specific job routes (only shows employer's own jobs)
	employers := protected.Group("/employers", employerOnly)
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type SalaryRequest struct {
	Min      int64  `json:"min" binding:"gte=0"`
	Max      int64  `json:"max" binding:"gte=0,gtefield=Min"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

type CreateJobRequest struct {
	Title            string        `json:"title" binding:"required,max=200"`
	Location         string        `json:"location" binding:"required,max=100"`
	Salary           SalaryRequest `json:"salary"`
	Experience       string        `json:"experience" binding:"max=50"`
	JobType          string        `json:"jobType" binding:"omitempty,oneof=full-time part-time contract internship remote"`
	WorkMode         string        `json:"workMode" binding:"omitempty,oneof=onsite remote hybrid"`
	Skills           []string      `json:"skills" binding:"dive,required,max=50"`
	Description      string        `json:"description" binding:"required,max=5000"`
	Requirements     []string      `json:"requirements"`
	Responsibilities []string      `json:"responsibilities"`
	Benefits         []string      `json:"benefits"`
	Deadline         string        `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Filter the job catalog. Every parameter is optional; list parameters may repeat or be comma-separated.
// @Tags         jobs
// @Produce      json
// @Param        search         query     string  false  "Substring of title, company name or a skill"
// @Param        location       query     string  false  "Substring of location"
// @Param        job_type       query     []string  false  "Job types"  collectionFormat(multi)
// @Param        work_mode      query     []string  false  "Work modes"  collectionFormat(multi)
// @Param        skills         query     []string  false  "Any of these skills"  collectionFormat(multi)
// @Param        salary_min     query     int     false  "Minimum of the salary range"
// @Param        salary_max     query     int     false  "Maximum of the salary range"
// @Param        posted_within  query     int     false  "Posted within N days"
// @Success      200            {object}  response.Response{data=[]domain.Job}
// @Failure      400            {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter, err := parseJobFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJobDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details retrieved", job)
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a new job posting (Employer only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	job := &domain.Job{
		Title:            req.Title,
		Location:         req.Location,
		Salary:           domain.Salary{Min: req.Salary.Min, Max: req.Salary.Max, Currency: req.Salary.Currency},
		Experience:       req.Experience,
		JobType:          req.JobType,
		WorkMode:         req.WorkMode,
		Skills:           nonNil(req.Skills),
		Description:      req.Description,
		Requirements:     nonNil(req.Requirements),
		Responsibilities: nonNil(req.Responsibilities),
		Benefits:         nonNil(req.Benefits),
	}
	if req.Deadline != "" {
		deadline, _ := time.Parse("2006-01-02", req.Deadline)
		job.Deadline = &deadline
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.PostJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListEmployerJobs godoc
// @Summary      List my jobs
// @Description  Jobs posted by the current employer
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Failure      403  {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListEmployerJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer jobs retrieved", jobs)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
