package footfall

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/models"
)

// windowStats aggregates the trailing minutes of realtime samples. An
// empty window is a valid answer: every field stays zero.
func (f *Footfall) windowStats(ownerID string, storeID string, minutes int) (*models.WindowStats, error) {
	if _, err := f.getStore(ownerID, storeID); err != nil {
		return nil, err
	}

	if minutes <= 0 {
		minutes = 60
	}
	since := time.Now().Add(-time.Duration(minutes) * time.Minute)

	var samples []models.Sample
	err := f.Db.Conn.
		Where("store_id = ? AND data_type = ? AND timestamp >= ?", storeID, models.DataTypeRealtime, since).
		Order("timestamp asc").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}

	stats := &models.WindowStats{}
	if len(samples) == 0 {
		return stats, nil
	}

	*stats = common.Reducer(samples, func(acc models.WindowStats, s models.Sample) models.WindowStats {
		acc.TotalEntries += s.EntryCount
		acc.TotalExits += s.ExitCount
		acc.AvgPosRate += s.PosRate
		acc.AvgOccupancy += float64(s.CurrentOccupancy)
		if s.CurrentOccupancy > acc.MaxOccupancy {
			acc.MaxOccupancy = s.CurrentOccupancy
		}
		acc.DataPoints++
		return acc
	}, models.WindowStats{})

	n := float64(stats.DataPoints)
	stats.AvgPosRate = common.Round2(stats.AvgPosRate / n)
	stats.AvgOccupancy = common.Round2(stats.AvgOccupancy / n)
	stats.LatestOccupancy = samples[len(samples)-1].CurrentOccupancy

	return stats, nil
}

// ResolvePeriod turns a calendar period into an absolute [start, end)
// range in local time: today is the local calendar day, week the trailing
// 7x24h, month the first of the month to the first of the next.
func ResolvePeriod(period models.Period, now time.Time) (time.Time, time.Time, error) {
	switch period {
	case models.PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), nil
	case models.PeriodWeek:
		return now.AddDate(0, 0, -7), now, nil
	case models.PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
}

func bucketKey(t time.Time, groupBy models.Granularity) time.Time {
	local := t.Local()
	if groupBy == models.GroupByHour {
		return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, local.Location())
	}
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// rollup groups realtime samples in the resolved period into calendar
// buckets. Bucketing happens in Go over the fetched rows so it does not
// depend on the SQL dialect's date functions; buckets come out ascending
// and empty buckets are omitted.
func (f *Footfall) rollup(ownerID string, storeID string, period models.Period, groupBy models.Granularity) ([]models.BucketStats, error) {
	if _, err := f.getStore(ownerID, storeID); err != nil {
		return nil, err
	}

	if groupBy != models.GroupByHour && groupBy != models.GroupByDay {
		return nil, fmt.Errorf("unknown granularity %q", groupBy)
	}

	start, end, err := ResolvePeriod(period, time.Now())
	if err != nil {
		return nil, err
	}

	var samples []models.Sample
	err = f.Db.Conn.
		Where("store_id = ? AND data_type = ? AND timestamp >= ? AND timestamp < ?",
			storeID, models.DataTypeRealtime, start, end).
		Order("timestamp asc").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}

	common.GetLoggerWith(
		common.LoggerNameFootfallCore,
		zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallStats),
	).Info("Rolling up samples for store",
		zap.String("store_id", storeID),
		zap.Time("start", start), zap.Time("end", end),
		zap.Int("sample_count", len(samples)))

	buckets := map[time.Time]*models.BucketStats{}
	for _, s := range samples {
		key := bucketKey(s.Timestamp, groupBy)
		b, exists := buckets[key]
		if !exists {
			b = &models.BucketStats{BucketStart: key}
			buckets[key] = b
		}
		b.TotalEntries += s.EntryCount
		b.TotalExits += s.ExitCount
		b.AvgPosRate += s.PosRate
		b.AvgOccupancy += float64(s.CurrentOccupancy)
		b.AvgQueueLength += float64(s.TotalQueue)
		if s.CurrentOccupancy > b.MaxOccupancy {
			b.MaxOccupancy = s.CurrentOccupancy
		}
		b.DataPoints++
	}

	results := make([]models.BucketStats, 0, len(buckets))
	for _, b := range buckets {
		n := float64(b.DataPoints)
		b.AvgPosRate = common.Round2(b.AvgPosRate / n)
		b.AvgOccupancy = common.Round2(b.AvgOccupancy / n)
		b.AvgQueueLength = common.Round2(b.AvgQueueLength / n)
		results = append(results, *b)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].BucketStart.Before(results[j].BucketStart)
	})

	return results, nil
}

type IAnalyticsImpl struct {
	footfall *Footfall
}

func (ia *IAnalyticsImpl) GetWindowStats(ownerID string, storeID string, minutes int) (*models.WindowStats, error) {
	return ia.footfall.windowStats(ownerID, storeID, minutes)
}

func (ia *IAnalyticsImpl) GetRollup(ownerID string, storeID string, period models.Period, groupBy models.Granularity) ([]models.BucketStats, error) {
	return ia.footfall.rollup(ownerID, storeID, period, groupBy)
}

func (f *Footfall) GetIAnalytics() IAnalytics {
	return &IAnalyticsImpl{footfall: f}
}
