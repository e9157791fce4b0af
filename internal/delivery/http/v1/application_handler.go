package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	jobSeekerOnly := middleware.RequireRole(domain.RoleJobSeeker)
	r.POST("/jobs/:id/apply", jobSeekerOnly, handler.Apply)

	jobseekers := r.Group("/jobseekers", jobSeekerOnly)
	{
		jobseekers.GET("/applications", handler.GetMyApplications)
	}

	// Employer routes
	employers := r.Group("/employers", middleware.RequireRole(domain.RoleEmployer))
	{
		employers.GET("/jobs/:id/applications", handler.ListJobApplications)
		employers.GET("/jobs/:id/applications/export", handler.ExportJobApplications)
		employers.PATCH("/applications/:id", handler.UpdateApplicationStatus)
	}
}

// ApplyRequest is the optional body of an application
type ApplyRequest struct {
	CoverLetter *string `json:"coverLetter" binding:"omitempty,max=5000"`
	ResumeURL   *string `json:"resumeUrl" binding:"omitempty,max=500"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=applied shortlisted rejected hired"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application for a job (Job seeker only). The body is optional.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string        true   "Job ID"
// @Param        body  body      ApplyRequest  false  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.Apply(c.Request.Context(), c.Param("id"), userID, req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current job seeker
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /jobseekers/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.ApplicationsForUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Get all applications for one of the employer's jobs
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.ApplicationsForJob(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ExportJobApplications godoc
// @Summary      Export applications for a job
// @Description  Download the applications of one of the employer's jobs as xlsx (default) or csv
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        id      path      string  true   "Job ID"
// @Param        format  query     string  false  "xlsx or csv"
// @Success      200     {file}    file
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /employers/jobs/{id}/applications/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ExportJobApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	format := c.DefaultQuery("format", usecase.ExportFormatXLSX)

	data, filename, err := h.applicationUC.ExportJobApplications(c.Request.Context(), userID, c.Param("id"), format)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == usecase.ExportFormatCSV {
		contentType = "text/csv; charset=utf-8"
	}
	response.Attachment(c, filename, contentType, data)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Move an application to any of applied, shortlisted, rejected or hired
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status, req.Notes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
