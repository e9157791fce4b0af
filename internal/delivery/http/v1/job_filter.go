package v1

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// parseJobFilter reads the catalog filter from query parameters. List
// parameters may be repeated or comma-separated.
func parseJobFilter(c *gin.Context) (domain.JobFilter, error) {
	filter := domain.JobFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		Location:  strings.TrimSpace(c.Query("location")),
		JobTypes:  queryList(c, "job_type"),
		WorkModes: queryList(c, "work_mode"),
		Skills:    queryList(c, "skills"),
	}

	var err error
	if filter.SalaryMin, err = queryInt64(c, "salary_min"); err != nil {
		return filter, err
	}
	if filter.SalaryMax, err = queryInt64(c, "salary_max"); err != nil {
		return filter, err
	}

	if raw := c.Query("posted_within"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return filter, apperror.BadRequest("posted_within must be a non-negative number of days")
		}
		filter.PostedWithin = days
	}

	return filter, nil
}

func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryInt64(c *gin.Context, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperror.BadRequest(key + " must be an integer")
	}
	return &v, nil
}
