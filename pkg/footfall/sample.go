package footfall

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/metrics"
	"liyu1981.xyz/footfall-service/pkg/models"
)

// ingestSample is the ingestion pipeline for one footfall sample:
//
//  1. ownership gate
//  2. derive occupancy from the latest strictly-earlier sample, then
//     persist the sample (the only step whose failure aborts the request)
//  3. derive queue metrics
//  4. synthesize alerts, best-effort
func (f *Footfall) ingestSample(ownerID string, storeID string, input *models.Sample) (*models.Sample, models.QueueMetrics, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFootfallCore,
		zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallSample),
	)

	store, err := f.getStore(ownerID, storeID)
	if err != nil {
		return nil, models.QueueMetrics{}, err
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	prior, err := f.priorOccupancy(storeID, timestamp)
	if err != nil {
		return nil, models.QueueMetrics{}, err
	}

	dataType := input.DataType
	if dataType == "" {
		dataType = models.DataTypeRealtime
	}

	queueMetrics := ComputeQueueMetrics(input.TillQueues)

	sample := models.Sample{
		StoreID:          storeID,
		OwnerID:          ownerID,
		Timestamp:        timestamp,
		EntryCount:       input.EntryCount,
		ExitCount:        input.ExitCount,
		CurrentOccupancy: ComputeOccupancy(prior, input.EntryCount, input.ExitCount),
		PosRate:          input.PosRate,
		TotalQueue:       queueMetrics.TotalQueue,
		AvgWaitTime:      queueMetrics.AvgWaitTime,
		DataType:         dataType,
		EntryDetails:     input.EntryDetails,
		ExitDetails:      input.ExitDetails,
		Weather:          input.Weather,
		SpecialEvents:    input.SpecialEvents,
		TillQueues:       input.TillQueues,
	}

	logger.Info("Received sample for store", zap.Reflect("sample", sample))

	if err := f.Db.Conn.Create(&sample).Error; err != nil {
		return nil, models.QueueMetrics{}, err
	}

	metrics.SamplesIngested.Inc()
	logger.Info("Ingested sample for store", zap.Reflect("sample", sample))

	// alerting is best-effort: the sample is durable, a synthesis failure
	// must not turn the response into an error
	if f.Alert == nil {
		return nil, models.QueueMetrics{}, fmt.Errorf("alert service not available")
	}
	if err := f.Alert.SynthesizeAlerts(store, &sample, queueMetrics); err != nil {
		metrics.AlertSynthesisFailures.Inc()
		logger.Warn("Alert synthesis failed after ingest",
			zap.String("store_id", storeID), zap.Error(err))
	}

	return &sample, queueMetrics, nil
}

const historyLimitCap = 100

// getStoreSamples pages through the sample log newest first. Returns the
// page plus the total match count.
func (f *Footfall) getStoreSamples(ownerID string, storeID string, q models.HistoryQuery) ([]models.Sample, int64, error) {
	if _, err := f.getStore(ownerID, storeID); err != nil {
		return nil, 0, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > historyLimitCap {
		limit = historyLimitCap
	}

	filtered := func() *gorm.DB {
		query := f.Db.Conn.Model(&models.Sample{}).Where("store_id = ?", storeID)
		if q.DataType != "" {
			query = query.Where("data_type = ?", q.DataType)
		}
		if q.StartDate != nil {
			query = query.Where("timestamp >= ?", *q.StartDate)
		}
		if q.EndDate != nil {
			query = query.Where("timestamp < ?", *q.EndDate)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var samples []models.Sample
	err := filtered().
		Preload("TillQueues").
		Order("timestamp desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&samples).Error
	return samples, total, err
}

type ISampleImpl struct {
	footfall *Footfall
}

func (is *ISampleImpl) IngestSample(ownerID string, storeID string, input *models.Sample) (*models.Sample, models.QueueMetrics, error) {
	return is.footfall.ingestSample(ownerID, storeID, input)
}

func (is *ISampleImpl) GetStoreSamples(ownerID string, storeID string, q models.HistoryQuery) ([]models.Sample, int64, error) {
	return is.footfall.getStoreSamples(ownerID, storeID, q)
}

func (f *Footfall) GetISample() ISample {
	return &ISampleImpl{footfall: f}
}
