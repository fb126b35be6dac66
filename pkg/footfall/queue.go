package footfall

import (
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/models"
)

// ComputeQueueMetrics derives aggregate queue state from the per-till
// queues of one sample. Only tills with status active contribute; the
// average wait is the queue-weighted service time across active tills,
// rounded to 2 decimal places.
func ComputeQueueMetrics(tills []models.TillQueue) models.QueueMetrics {
	type acc struct {
		totalQueue  int
		waitSum     float64
		activeTills int
	}

	folded := common.Reducer(tills, func(a acc, till models.TillQueue) acc {
		if till.Status != models.TillStatusActive {
			return a
		}
		a.totalQueue += till.QueueLength
		a.waitSum += float64(till.QueueLength) * till.AvgServiceTime
		a.activeTills++
		return a
	}, acc{})

	metrics := models.QueueMetrics{
		TotalQueue:  folded.totalQueue,
		ActiveTills: folded.activeTills,
	}
	if folded.activeTills > 0 {
		metrics.AvgWaitTime = common.Round2(folded.waitSum / float64(folded.activeTills))
	}
	return metrics
}
