package models

import "time"

// Derived, non-persisted shapes shared between the core services and the
// HTTP layer.

type QueueMetrics struct {
	TotalQueue  int     `json:"total_queue"`
	AvgWaitTime float64 `json:"avg_wait_time"`
	ActiveTills int     `json:"active_tills"`
}

type WindowStats struct {
	TotalEntries    int     `json:"total_entries"`
	TotalExits      int     `json:"total_exits"`
	AvgPosRate      float64 `json:"avg_pos_rate"`
	AvgOccupancy    float64 `json:"avg_occupancy"`
	MaxOccupancy    int     `json:"max_occupancy"`
	DataPoints      int     `json:"data_points"`
	LatestOccupancy int     `json:"latest_occupancy"`
}

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

type Granularity string

const (
	GroupByHour Granularity = "hour"
	GroupByDay  Granularity = "day"
)

type BucketStats struct {
	BucketStart    time.Time `json:"bucket_start"`
	TotalEntries   int       `json:"total_entries"`
	TotalExits     int       `json:"total_exits"`
	AvgPosRate     float64   `json:"avg_pos_rate"`
	AvgOccupancy   float64   `json:"avg_occupancy"`
	AvgQueueLength float64   `json:"avg_queue_length"`
	MaxOccupancy   int       `json:"max_occupancy"`
	DataPoints     int       `json:"data_points"`
}

type HistoryQuery struct {
	Page      int
	Limit     int
	StartDate *time.Time
	EndDate   *time.Time
	DataType  DataType
}
