package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		seeker := profile.Group("/jobseeker", middleware.RequireRole(domain.RoleJobSeeker))
		seeker.GET("", handler.GetJobSeekerProfile)
		seeker.PUT("", handler.UpdateJobSeekerProfile)

		employer := profile.Group("/employer", middleware.RequireRole(domain.RoleEmployer))
		employer.GET("", handler.GetEmployerProfile)
		employer.PUT("", handler.UpdateEmployerProfile)
	}
}

// GetJobSeekerProfile godoc
// @Summary      Get my job seeker profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.JobSeekerProfile}
// @Router       /profile/jobseeker [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetJobSeekerProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.GetJobSeekerProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateJobSeekerProfile godoc
// @Summary      Update my job seeker profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.JobSeekerProfile  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.JobSeekerProfile}
// @Failure      400      {object}  response.Response
// @Router       /profile/jobseeker [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateJobSeekerProfile(c *gin.Context) {
	var profile domain.JobSeekerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.profileUC.UpdateJobSeekerProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetEmployerProfile godoc
// @Summary      Get my company profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Router       /profile/employer [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.GetEmployerProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpdateEmployerProfile godoc
// @Summary      Update my company profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.EmployerProfile  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400      {object}  response.Response
// @Router       /profile/employer [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	var profile domain.EmployerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}
