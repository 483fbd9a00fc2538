package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ShowAnalyticsOutput contains the precomputed dashboard metrics.
type ShowAnalyticsOutput struct {
	Analytics domain.Analytics
}

// ShowAnalytics retrieves the server-computed productivity metrics.
// No scoring happens client-side.
type ShowAnalytics struct {
	api  domain.AnalyticsAPI
	sess Session
}

// NewShowAnalytics creates a new ShowAnalytics use case.
func NewShowAnalytics(api domain.AnalyticsAPI, sess Session) *ShowAnalytics {
	return &ShowAnalytics{api: api, sess: sess}
}

// Execute fetches the metrics.
func (uc *ShowAnalytics) Execute(ctx context.Context) (*ShowAnalyticsOutput, error) {
	analytics, err := uc.api.Summary(ctx)
	if err != nil {
		invalidateOnAuthError(uc.sess, err)
		return nil, fmt.Errorf("fetch analytics: %w", err)
	}
	return &ShowAnalyticsOutput{Analytics: *analytics}, nil
}
