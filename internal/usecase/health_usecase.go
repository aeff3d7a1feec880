package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	stage           string
	emailConfigured bool
}

// NewHealthUsecase reports liveness. emailConfigured is fixed at startup
// because the API key is resolved once.
func NewHealthUsecase(stage string, emailConfigured bool) HealthUsecase {
	return &healthUsecase{stage: stage, emailConfigured: emailConfigured}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	email := "not_configured"
	if u.emailConfigured {
		email = "configured"
	}
	return map[string]string{
		"status": "ok",
		"stage":  u.stage,
		"email":  email,
	}
}
