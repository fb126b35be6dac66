package footfall

import (
	"liyu1981.xyz/footfall-service/pkg/db"
	"liyu1981.xyz/footfall-service/pkg/models"
)

//go:generate mockgen -source=footfall.go -destination=mocks/footfall_mock.go -package=mocks

type IStore interface {
	CreateStore(ownerID string, input *models.Store) (*models.Store, error)
	GetStore(ownerID string, storeID string) (*models.Store, error)
	ListStores(ownerID string) ([]models.Store, error)
	DeactivateStore(ownerID string, storeID string) error
}

type IConfig interface {
	UpsertConfig(storeID string, input *models.StoreConfig) error
	GetStoreConfig(storeID string) (*models.StoreConfig, error)
}

type ISample interface {
	IngestSample(ownerID string, storeID string, input *models.Sample) (*models.Sample, models.QueueMetrics, error)
	GetStoreSamples(ownerID string, storeID string, query models.HistoryQuery) ([]models.Sample, int64, error)
}

type IAlert interface {
	SynthesizeAlerts(store *models.Store, sample *models.Sample, metrics models.QueueMetrics) error
	GetStoreAlerts(ownerID string, storeID string, openOnly bool) ([]models.Alert, error)
	AcknowledgeAlert(ownerID string, storeID string, alertID uint) error
	ResolveAlert(ownerID string, storeID string, alertID uint) error
}

type IAnalytics interface {
	GetWindowStats(ownerID string, storeID string, minutes int) (*models.WindowStats, error)
	GetRollup(ownerID string, storeID string, period models.Period, groupBy models.Granularity) ([]models.BucketStats, error)
}

type Footfall struct {
	Db        db.DB
	Store     IStore
	Config    IConfig
	Sample    ISample
	Alert     IAlert
	Analytics IAnalytics
}

type ServiceOpts struct {
	Store     IStore
	Config    IConfig
	Sample    ISample
	Alert     IAlert
	Analytics IAnalytics
}

func (f *Footfall) WithServices(opts ServiceOpts) *Footfall {
	if opts.Store != nil {
		f.Store = opts.Store
	}
	if opts.Config != nil {
		f.Config = opts.Config
	}
	if opts.Sample != nil {
		f.Sample = opts.Sample
	}
	if opts.Alert != nil {
		f.Alert = opts.Alert
	}
	if opts.Analytics != nil {
		f.Analytics = opts.Analytics
	}
	return f
}
