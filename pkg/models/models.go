package models

import "time"

type AlertType string

const (
	AlertTypeStaffing AlertType = "staffing"
	AlertTypeQueue    AlertType = "queue"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

type TillStatus string

const (
	TillStatusActive      TillStatus = "active"
	TillStatusInactive    TillStatus = "inactive"
	TillStatusMaintenance TillStatus = "maintenance"
)

type DataType string

const (
	DataTypeRealtime DataType = "realtime"
	DataTypeHourly   DataType = "hourly"
	DataTypeDaily    DataType = "daily"
)

type Store struct {
	StoreID     string `gorm:"primaryKey"`
	OwnerID     string `gorm:"index"`
	Name        string
	Location    string
	TillCount   int
	Capacity    int
	EntryPoints int
	OpeningHour string
	ClosingHour string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Config  *StoreConfig `gorm:"foreignKey:StoreID;references:StoreID"`
	Samples []Sample     `gorm:"foreignKey:StoreID;references:StoreID"`
	Alerts  []Alert      `gorm:"foreignKey:StoreID;references:StoreID"`
}

// StoreConfig holds the per-store alert thresholds. Stores without a row
// fall back to the service defaults.
type StoreConfig struct {
	StoreID              string `gorm:"primaryKey"`
	QueueMediumLength    int
	QueueHighLength      int
	QueueCriticalLength  int
	OccupancyMediumRatio float64
	OccupancyHighRatio   float64
	WaitTimeMediumBound  float64
	TillQueueThreshold   int
}

// Sample is one footfall observation for a store. Samples are an
// append-only log: CurrentOccupancy is derived once at ingestion time and
// the record is never updated afterwards.
type Sample struct {
	ID               uint      `gorm:"primaryKey"`
	StoreID          string    `gorm:"index"`
	OwnerID          string    `gorm:"index"`
	Timestamp        time.Time `gorm:"index"`
	EntryCount       int
	ExitCount        int
	CurrentOccupancy int
	PosRate          float64
	TotalQueue       int
	AvgWaitTime      float64
	DataType         DataType `gorm:"type:varchar(10);check:data_type IN ('realtime','hourly','daily')"`
	EntryDetails     string
	ExitDetails      string
	Weather          string
	SpecialEvents    string

	TillQueues []TillQueue `gorm:"foreignKey:SampleID"`
}

type TillQueue struct {
	ID             uint `gorm:"primaryKey"`
	SampleID       uint `gorm:"index"`
	TillNumber     int
	QueueLength    int
	AvgServiceTime float64
	Status         TillStatus `gorm:"type:varchar(20);check:status IN ('active','inactive','maintenance')"`
}

// Alert lifecycle: open -> acknowledged -> resolved, or open -> resolved.
// TillNumber 0 means the alert is store scoped.
type Alert struct {
	ID             uint   `gorm:"primaryKey"`
	StoreID        string `gorm:"index"`
	OwnerID        string
	Timestamp      time.Time
	Type           AlertType     `gorm:"type:varchar(20);check:type IN ('staffing','queue')"`
	Severity       AlertSeverity `gorm:"type:varchar(10);check:severity IN ('low','medium','high','critical')"`
	TillNumber     int
	Title          string
	Message        string
	IsAcknowledged bool
	IsResolved     bool
	AcknowledgedAt *time.Time
	ResolvedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (a *Alert) IsOpen() bool {
	return !a.IsAcknowledged && !a.IsResolved
}
