package footfall

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/metrics"
	"liyu1981.xyz/footfall-service/pkg/models"
)

// StaffingSeverity maps a sample's derived metrics onto the staffing
// escalation bands. ok is false when conditions do not warrant an alert;
// existing open alerts are then left untouched.
func StaffingSeverity(cfg models.StoreConfig, m models.QueueMetrics, occupancy int, capacity int, posRate float64) (models.AlertSeverity, bool) {
	ratio := 0.0
	if capacity > 0 {
		ratio = float64(occupancy) / float64(capacity)
	}

	switch {
	case m.TotalQueue >= cfg.QueueCriticalLength && ratio >= cfg.OccupancyHighRatio:
		return models.SeverityCritical, true
	case m.TotalQueue >= cfg.QueueHighLength || ratio >= cfg.OccupancyHighRatio:
		return models.SeverityHigh, true
	case m.TotalQueue >= cfg.QueueMediumLength && posRate < 1.0:
		// queues building while checkout throughput has stalled
		return models.SeverityHigh, true
	case m.TotalQueue >= cfg.QueueMediumLength || m.AvgWaitTime >= cfg.WaitTimeMediumBound || ratio >= cfg.OccupancyMediumRatio:
		return models.SeverityMedium, true
	}
	return "", false
}

// QueueSeverity maps one till's queue state onto the per-till escalation
// bands, using the till's wait contribution (queue length x service time).
func QueueSeverity(cfg models.StoreConfig, till models.TillQueue) (models.AlertSeverity, bool) {
	if cfg.TillQueueThreshold <= 0 || till.QueueLength < cfg.TillQueueThreshold {
		return "", false
	}

	wait := float64(till.QueueLength) * till.AvgServiceTime
	switch {
	case till.QueueLength >= 2*cfg.TillQueueThreshold && wait >= 45.0:
		return models.SeverityCritical, true
	case 2*till.QueueLength >= 3*cfg.TillQueueThreshold || wait >= 30.0:
		return models.SeverityHigh, true
	}
	return models.SeverityMedium, true
}

func (f *Footfall) synthesizeAlerts(store *models.Store, sample *models.Sample, m models.QueueMetrics) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFootfallCore,
		zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallAlert),
	)

	cfg := f.storeConfigOrDefault(store.StoreID)

	var errs []error

	if err := f.synthesizeStaffingAlert(cfg, store, sample, m); err != nil {
		logger.Warn("Staffing alert synthesis failed",
			zap.String("store_id", store.StoreID), zap.Error(err))
		errs = append(errs, err)
	}

	// each till is its own failure domain
	for _, till := range sample.TillQueues {
		if err := f.synthesizeQueueAlert(cfg, store, sample, till); err != nil {
			logger.Warn("Queue alert synthesis failed",
				zap.String("store_id", store.StoreID), zap.Int("till_number", till.TillNumber), zap.Error(err))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (f *Footfall) synthesizeStaffingAlert(cfg models.StoreConfig, store *models.Store, sample *models.Sample, m models.QueueMetrics) error {
	severity, ok := StaffingSeverity(cfg, m, sample.CurrentOccupancy, store.Capacity, sample.PosRate)
	if !ok {
		return nil
	}

	alert := models.Alert{
		StoreID:   store.StoreID,
		OwnerID:   store.OwnerID,
		Timestamp: sample.Timestamp,
		Type:      models.AlertTypeStaffing,
		Severity:  severity,
		Title:     "Additional staffing recommended",
		Message: fmt.Sprintf(
			"Total queue %d, avg wait %.2f min, occupancy %d/%d, POS rate %.2f/min",
			m.TotalQueue, m.AvgWaitTime, sample.CurrentOccupancy, store.Capacity, sample.PosRate),
	}
	return f.upsertOpenAlert(&alert)
}

func (f *Footfall) synthesizeQueueAlert(cfg models.StoreConfig, store *models.Store, sample *models.Sample, till models.TillQueue) error {
	severity, ok := QueueSeverity(cfg, till)
	if !ok {
		return nil
	}

	alert := models.Alert{
		StoreID:    store.StoreID,
		OwnerID:    store.OwnerID,
		Timestamp:  sample.Timestamp,
		Type:       models.AlertTypeQueue,
		Severity:   severity,
		TillNumber: till.TillNumber,
		Title:      fmt.Sprintf("Long queue at till %d", till.TillNumber),
		Message: fmt.Sprintf(
			"Till %d has %d customers queued, estimated wait %.2f min",
			till.TillNumber, till.QueueLength, float64(till.QueueLength)*till.AvgServiceTime),
	}
	return f.upsertOpenAlert(&alert)
}

// upsertOpenAlert is the atomic find-open-or-create: the partial unique
// index on (store_id, type, till_number) over open alerts turns a second
// synthesis for the same scope into an in-place refresh of severity and
// message, in one conditional write.
func (f *Footfall) upsertOpenAlert(alert *models.Alert) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFootfallCore,
		zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallAlert),
	)

	logger.Info("Alert found", zap.Reflect("alert", alert))

	err := f.Db.Conn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "store_id"}, {Name: "type"}, {Name: "till_number"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "is_acknowledged = 0 AND is_resolved = 0"},
		}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"severity":   alert.Severity,
			"title":      alert.Title,
			"message":    alert.Message,
			"timestamp":  alert.Timestamp,
			"updated_at": time.Now(),
		}),
	}).Create(alert).Error
	if err != nil {
		return err
	}

	metrics.AlertsSynthesized.WithLabelValues(string(alert.Type), string(alert.Severity)).Inc()
	logger.Info("Alert saved", zap.Reflect("alert", alert))
	return nil
}

func (f *Footfall) getStoreAlerts(ownerID string, storeID string, openOnly bool) ([]models.Alert, error) {
	if _, err := f.getStore(ownerID, storeID); err != nil {
		return nil, err
	}

	query := f.Db.Conn.Where("store_id = ?", storeID)
	if openOnly {
		query = query.Where("is_acknowledged = ? AND is_resolved = ?", false, false)
	}

	var alerts []models.Alert
	err := query.Order("timestamp desc").Find(&alerts).Error
	return alerts, err
}

// acknowledgeAlert moves open -> acknowledged. The state guard lives in
// the conditional update, not in memory, so concurrent transitions cannot
// double-apply.
func (f *Footfall) acknowledgeAlert(ownerID string, storeID string, alertID uint) error {
	if _, err := f.getStore(ownerID, storeID); err != nil {
		return err
	}

	now := time.Now()
	res := f.Db.Conn.Model(&models.Alert{}).
		Where("id = ? AND store_id = ? AND is_acknowledged = ? AND is_resolved = ?",
			alertID, storeID, false, false).
		Updates(map[string]interface{}{
			"is_acknowledged": true,
			"acknowledged_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlertStateConflict
	}
	return nil
}

// resolveAlert moves open or acknowledged -> resolved. Resolved is
// terminal for the record; the same scope may open a fresh alert later.
func (f *Footfall) resolveAlert(ownerID string, storeID string, alertID uint) error {
	if _, err := f.getStore(ownerID, storeID); err != nil {
		return err
	}

	now := time.Now()
	res := f.Db.Conn.Model(&models.Alert{}).
		Where("id = ? AND store_id = ? AND is_resolved = ?", alertID, storeID, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlertStateConflict
	}
	return nil
}

type IAlertImpl struct {
	footfall *Footfall
}

func (ia *IAlertImpl) SynthesizeAlerts(store *models.Store, sample *models.Sample, m models.QueueMetrics) error {
	return ia.footfall.synthesizeAlerts(store, sample, m)
}

func (ia *IAlertImpl) GetStoreAlerts(ownerID string, storeID string, openOnly bool) ([]models.Alert, error) {
	return ia.footfall.getStoreAlerts(ownerID, storeID, openOnly)
}

func (ia *IAlertImpl) AcknowledgeAlert(ownerID string, storeID string, alertID uint) error {
	return ia.footfall.acknowledgeAlert(ownerID, storeID, alertID)
}

func (ia *IAlertImpl) ResolveAlert(ownerID string, storeID string, alertID uint) error {
	return ia.footfall.resolveAlert(ownerID, storeID, alertID)
}

func (f *Footfall) GetIAlert() IAlert {
	return &IAlertImpl{footfall: f}
}
