package domain

// Analytics holds the precomputed dashboard metrics returned by the API.
// The scoring algorithm is server-side; these values are display-only.
// Fields are ordered to minimize memory padding.
type Analytics struct {
	TasksByPriority     map[Priority]int
	TimeDistribution    map[string]int // morning/afternoon/evening/night
	Insights            []string
	CompletionTrend     []TrendPoint
	WeeklyPattern       []WeekdayCount
	CompletionRate      float64
	AvgCompletionHours  float64
	FastestHours        float64
	SlowestHours        float64
	TotalTasks          int
	CompletedTasks      int
	InProgressTasks     int
	PendingTasks        int
	OverdueTasks        int
	ProductivityScore   int
}

// TrendPoint is one day in the completion trend.
type TrendPoint struct {
	Date      string // YYYY-MM-DD
	Day       string // Mon..Sun
	Completed int
	Created   int
}

// WeekdayCount is the completion count for one weekday.
type WeekdayCount struct {
	Day       string
	Completed int
}
