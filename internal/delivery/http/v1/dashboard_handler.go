package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	protected.GET("/dashboard", handler.Get)
}

// GetDashboard godoc
// @Summary      Role dashboard
// @Description  Job seekers get their applications, stats and recommendations; employers get their jobs and applicants.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	ctx := c.Request.Context()

	var (
		data interface{}
		err  error
	)
	switch c.GetString(string(domain.KeyUserRole)) {
	case domain.RoleJobSeeker:
		data, err = h.dashboardUC.JobSeekerDashboard(ctx, userID)
	case domain.RoleEmployer:
		data, err = h.dashboardUC.EmployerDashboard(ctx, userID)
	default:
		err = apperror.Forbidden("Unknown role")
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard retrieved", data)
}
