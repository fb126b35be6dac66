package footfall

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/models"
	_ "liyu1981.xyz/footfall-service/pkg/testing"
)

func TestStaffingSeverityBands(t *testing.T) {
	cfg := DefaultStoreConfig

	cases := []struct {
		name      string
		metrics   models.QueueMetrics
		occupancy int
		capacity  int
		posRate   float64
		severity  models.AlertSeverity
		raised    bool
	}{
		{
			name:     "quiet store raises nothing",
			metrics:  models.QueueMetrics{TotalQueue: 2, AvgWaitTime: 3},
			capacity: 100, occupancy: 30, posRate: 2.0,
		},
		{
			name:     "medium queue",
			metrics:  models.QueueMetrics{TotalQueue: 7, AvgWaitTime: 4},
			capacity: 100, occupancy: 30, posRate: 2.0,
			severity: models.SeverityMedium, raised: true,
		},
		{
			name:     "long wait alone reaches medium",
			metrics:  models.QueueMetrics{TotalQueue: 3, AvgWaitTime: 12},
			capacity: 100, occupancy: 30, posRate: 2.0,
			severity: models.SeverityMedium, raised: true,
		},
		{
			name:     "medium queue with stalled checkout escalates",
			metrics:  models.QueueMetrics{TotalQueue: 7, AvgWaitTime: 4},
			capacity: 100, occupancy: 30, posRate: 0.5,
			severity: models.SeverityHigh, raised: true,
		},
		{
			name:     "high queue",
			metrics:  models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6},
			capacity: 100, occupancy: 30, posRate: 2.0,
			severity: models.SeverityHigh, raised: true,
		},
		{
			name:     "near-capacity occupancy",
			metrics:  models.QueueMetrics{TotalQueue: 3, AvgWaitTime: 2},
			capacity: 100, occupancy: 90, posRate: 2.0,
			severity: models.SeverityHigh, raised: true,
		},
		{
			name:     "critical queue with packed store",
			metrics:  models.QueueMetrics{TotalQueue: 16, AvgWaitTime: 20},
			capacity: 100, occupancy: 90, posRate: 2.0,
			severity: models.SeverityCritical, raised: true,
		},
		{
			name:     "zero capacity never divides",
			metrics:  models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6},
			capacity: 0, occupancy: 90, posRate: 2.0,
			severity: models.SeverityHigh, raised: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			severity, raised := StaffingSeverity(cfg, tc.metrics, tc.occupancy, tc.capacity, tc.posRate)
			assert.Equal(t, tc.raised, raised)
			if tc.raised {
				assert.Equal(t, tc.severity, severity)
			}
		})
	}
}

func TestQueueSeverityBands(t *testing.T) {
	cfg := DefaultStoreConfig

	_, raised := QueueSeverity(cfg, models.TillQueue{TillNumber: 1, QueueLength: 7, AvgServiceTime: 3})
	assert.False(t, raised, "below threshold raises nothing")

	severity, raised := QueueSeverity(cfg, models.TillQueue{TillNumber: 1, QueueLength: 8, AvgServiceTime: 1})
	assert.True(t, raised)
	assert.Equal(t, models.SeverityMedium, severity)

	severity, raised = QueueSeverity(cfg, models.TillQueue{TillNumber: 1, QueueLength: 12, AvgServiceTime: 3})
	assert.True(t, raised)
	assert.Equal(t, models.SeverityHigh, severity, "wait contribution 36 escalates")

	severity, raised = QueueSeverity(cfg, models.TillQueue{TillNumber: 1, QueueLength: 16, AvgServiceTime: 3})
	assert.True(t, raised)
	assert.Equal(t, models.SeverityCritical, severity)
}

func TestSynthesizeAlerts_DedupesOpenStaffingAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	sample := &models.Sample{
		StoreID:          store.StoreID,
		OwnerID:          store.OwnerID,
		Timestamp:        time.Now(),
		CurrentOccupancy: 30,
		PosRate:          2.0,
	}
	metrics := models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6, ActiveTills: 2}

	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, metrics))
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, metrics))

	open, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1, "second synthesis refreshes, never duplicates")
	assert.Equal(t, models.AlertTypeStaffing, open[0].Type)
	assert.Equal(t, models.SeverityHigh, open[0].Severity)
	assert.Equal(t, 0, open[0].TillNumber)
}

func TestSynthesizeAlerts_RefreshesSeverityInPlace(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	sample := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 30, PosRate: 2.0,
	}

	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 7, AvgWaitTime: 4}))

	open, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, models.SeverityMedium, open[0].Severity)
	firstID := open[0].ID

	// conditions worsen: the same open alert escalates in place
	sample.CurrentOccupancy = 90
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 16, AvgWaitTime: 20}))

	open, err = f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, firstID, open[0].ID)
	assert.Equal(t, models.SeverityCritical, open[0].Severity)
}

func TestSynthesizeAlerts_LeavesOpenAlertWhenConditionsSubside(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	busy := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 30, PosRate: 2.0,
	}
	require.NoError(t, f.Alert.SynthesizeAlerts(store, busy, models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6}))

	quiet := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 5, PosRate: 2.0,
	}
	require.NoError(t, f.Alert.SynthesizeAlerts(store, quiet, models.QueueMetrics{TotalQueue: 1, AvgWaitTime: 1}))

	// synthesis never auto-resolves
	open, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, models.SeverityHigh, open[0].Severity)
}

func TestSynthesizeAlerts_PerTillScope(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	sample := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 10, PosRate: 2.0,
		TillQueues: []models.TillQueue{
			{TillNumber: 1, QueueLength: 12, AvgServiceTime: 3, Status: models.TillStatusActive},
			{TillNumber: 2, QueueLength: 16, AvgServiceTime: 3, Status: models.TillStatusActive},
			{TillNumber: 3, QueueLength: 2, AvgServiceTime: 1, Status: models.TillStatusActive},
		},
	}

	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 0}))
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 0}))

	open, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 2, "one open alert per till scope")

	byTill := map[int]models.AlertSeverity{}
	for _, alert := range open {
		assert.Equal(t, models.AlertTypeQueue, alert.Type)
		byTill[alert.TillNumber] = alert.Severity
	}
	assert.Equal(t, models.SeverityHigh, byTill[1])
	assert.Equal(t, models.SeverityCritical, byTill[2])
}

func TestAlertTransitions(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	sample := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 30, PosRate: 2.0,
	}
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6}))

	open, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	alertID := open[0].ID

	require.NoError(t, f.Alert.AcknowledgeAlert(store.OwnerID, store.StoreID, alertID))
	assert.ErrorIs(t, f.Alert.AcknowledgeAlert(store.OwnerID, store.StoreID, alertID), ErrAlertStateConflict)

	require.NoError(t, f.Alert.ResolveAlert(store.OwnerID, store.StoreID, alertID))
	assert.ErrorIs(t, f.Alert.ResolveAlert(store.OwnerID, store.StoreID, alertID), ErrAlertStateConflict)

	all, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsAcknowledged)
	assert.True(t, all[0].IsResolved)
	assert.NotNil(t, all[0].AcknowledgedAt)
	assert.NotNil(t, all[0].ResolvedAt)

	// a resolved scope may open a fresh alert record
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6}))

	all, err = f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err = f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.NotEqual(t, alertID, open[0].ID)
}

func TestResolveDirectlyFromOpen(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	sample := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 30, PosRate: 2.0,
	}
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6}))

	open, err := f.Alert.GetStoreAlerts(store.OwnerID, store.StoreID, true)
	require.NoError(t, err)
	require.Len(t, open, 1)

	require.NoError(t, f.Alert.ResolveAlert(store.OwnerID, store.StoreID, open[0].ID))
	assert.ErrorIs(t, f.Alert.AcknowledgeAlert(store.OwnerID, store.StoreID, open[0].ID), ErrAlertStateConflict)
}

func TestSynthesizeAlerts_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, f, _, _, _ := GetMockFootfallWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	store := seedStore(t, f, 100)

	sample := &models.Sample{
		StoreID: store.StoreID, OwnerID: store.OwnerID,
		Timestamp: time.Now(), CurrentOccupancy: 30, PosRate: 2.0,
	}
	require.NoError(t, f.Alert.SynthesizeAlerts(store, sample, models.QueueMetrics{TotalQueue: 12, AvgWaitTime: 6}))

	logs := ParseLogs(buf)

	{
		found := false
		for _, log := range logs {
			lobj := log.(map[string]any)
			if lobj["category"] == "alert" &&
				lobj["logger"] == "footfall_core" &&
				lobj["msg"] == "Alert saved" &&
				lobj["alert"].(map[string]any)["StoreID"] == store.StoreID &&
				lobj["alert"].(map[string]any)["Type"] == "staffing" {
				found = true
			}
		}
		assert.True(t, found, "log not found")
	}
}
