package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthChecker probes one backing dependency.
type HealthChecker func(ctx context.Context) error

type healthUsecase struct {
	checks map[string]HealthChecker
}

func NewHealthUsecase(checks map[string]HealthChecker) HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	result := map[string]string{
		"status": "ok",
	}
	for name, check := range u.checks {
		if err := check(ctx); err != nil {
			result[name] = "unavailable"
			result["status"] = "degraded"
			continue
		}
		result[name] = "ok"
	}
	return result
}
