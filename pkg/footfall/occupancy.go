package footfall

import (
	"time"

	"liyu1981.xyz/footfall-service/pkg/models"
)

// ComputeOccupancy folds one sample's entry/exit counts into the prior
// running occupancy, clamped at zero.
func ComputeOccupancy(priorOccupancy, entryCount, exitCount int) int {
	occupancy := priorOccupancy + entryCount - exitCount
	if occupancy < 0 {
		return 0
	}
	return occupancy
}

// priorOccupancy returns the occupancy of the latest sample for the store
// strictly earlier than t, or 0 when no earlier sample exists. Looking
// only at strictly-earlier samples keeps a backfilled sample's derivation
// independent of insertion order.
func (f *Footfall) priorOccupancy(storeID string, t time.Time) (int, error) {
	var samples []models.Sample
	err := f.Db.Conn.
		Where("store_id = ? AND timestamp < ?", storeID, t).
		Order("timestamp desc").
		Limit(1).
		Find(&samples).Error
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, nil
	}
	return samples[0].CurrentOccupancy, nil
}

// RecomputeOccupancy re-derives a sample's occupancy from the samples
// strictly earlier than its own timestamp. For backfilled history this
// yields the same value the sample would have received had it been
// ingested in timestamp order.
func (f *Footfall) RecomputeOccupancy(sample *models.Sample) (int, error) {
	prior, err := f.priorOccupancy(sample.StoreID, sample.Timestamp)
	if err != nil {
		return 0, err
	}
	return ComputeOccupancy(prior, sample.EntryCount, sample.ExitCount), nil
}
