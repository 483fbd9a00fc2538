package api

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure AnalyticsClient implements domain.AnalyticsAPI.
var _ domain.AnalyticsAPI = (*AnalyticsClient)(nil)

// AnalyticsClient implements domain.AnalyticsAPI over the /analytics resource.
type AnalyticsClient struct {
	client *Client
}

// NewAnalyticsClient creates an AnalyticsClient sharing the given base client.
func NewAnalyticsClient(client *Client) *AnalyticsClient {
	return &AnalyticsClient{client: client}
}

// analyticsJSON is the wire form of the analytics summary.
type analyticsJSON struct {
	TasksByPriority    map[string]int `json:"tasks_by_priority"`
	TimeDistribution   map[string]int `json:"time_distribution"`
	Insights           []string       `json:"ai_insights"`
	CompletionTrend    []struct {
		Date      string `json:"date"`
		Day       string `json:"day"`
		Completed int    `json:"completed"`
		Created   int    `json:"created"`
	} `json:"completion_trend"`
	WeeklyPattern []struct {
		Day       string `json:"day"`
		Completed int    `json:"completed"`
	} `json:"weekly_pattern"`
	CompletionRate     float64 `json:"completion_rate"`
	AvgCompletionHours float64 `json:"average_completion_time_hours"`
	FastestHours       float64 `json:"fastest_completion_hours"`
	SlowestHours       float64 `json:"slowest_completion_hours"`
	TotalTasks         int     `json:"total_tasks"`
	CompletedTasks     int     `json:"completed_tasks"`
	InProgressTasks    int     `json:"in_progress_tasks"`
	PendingTasks       int     `json:"pending_tasks"`
	OverdueTasks       int     `json:"overdue_tasks"`
	ProductivityScore  int     `json:"productivity_score"`
}

// Summary retrieves the precomputed dashboard metrics.
func (ac *AnalyticsClient) Summary(ctx context.Context) (*domain.Analytics, error) {
	var wire analyticsJSON
	if err := ac.client.getJSON(ctx, "/analytics/", &wire); err != nil {
		return nil, err
	}

	out := &domain.Analytics{
		TimeDistribution:   wire.TimeDistribution,
		Insights:           wire.Insights,
		CompletionRate:     wire.CompletionRate,
		AvgCompletionHours: wire.AvgCompletionHours,
		FastestHours:       wire.FastestHours,
		SlowestHours:       wire.SlowestHours,
		TotalTasks:         wire.TotalTasks,
		CompletedTasks:     wire.CompletedTasks,
		InProgressTasks:    wire.InProgressTasks,
		PendingTasks:       wire.PendingTasks,
		OverdueTasks:       wire.OverdueTasks,
		ProductivityScore:  wire.ProductivityScore,
	}
	if len(wire.TasksByPriority) > 0 {
		out.TasksByPriority = make(map[domain.Priority]int, len(wire.TasksByPriority))
		for k, v := range wire.TasksByPriority {
			out.TasksByPriority[domain.Priority(k)] = v
		}
	}
	for _, p := range wire.CompletionTrend {
		out.CompletionTrend = append(out.CompletionTrend, domain.TrendPoint{
			Date:      p.Date,
			Day:       p.Day,
			Completed: p.Completed,
			Created:   p.Created,
		})
	}
	for _, p := range wire.WeeklyPattern {
		out.WeeklyPattern = append(out.WeeklyPattern, domain.WeekdayCount{
			Day:       p.Day,
			Completed: p.Completed,
		})
	}
	return out, nil
}
