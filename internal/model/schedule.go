package model

type ActivityType string

const (
	ActivityStudy  ActivityType = "study"
	ActivityPrayer ActivityType = "prayer"
	ActivitySport  ActivityType = "sport"
	ActivitySleep  ActivityType = "sleep"
	ActivityRest   ActivityType = "rest"
	ActivityMeal   ActivityType = "meal"
)

type ScheduleBlock struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Type            ActivityType `json:"type"`
	StartTime       string       `json:"startTime"` // HH:MM，24小时制
	DurationMinutes int          `json:"durationMinutes"`
	IsCompleted     bool         `json:"isCompleted"`
}
