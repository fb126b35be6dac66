package footfall

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/footfall-service/pkg/db"
	"liyu1981.xyz/footfall-service/pkg/footfall/mocks"
	"liyu1981.xyz/footfall-service/pkg/models"
)

func GetMockFootfallWithMemorySqliteDialector(t *testing.T, useMockSample, useMockAlert, useMockAnalytics bool) (
	*gomock.Controller,
	*Footfall,
	*mocks.MockISample,
	*mocks.MockIAlert,
	*mocks.MockIAnalytics,
) {
	ctrl := gomock.NewController(t)

	mockISample := mocks.NewMockISample(ctrl)
	mockIAlert := mocks.NewMockIAlert(ctrl)
	mockIAnalytics := mocks.NewMockIAnalytics(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	footfallInstance := (&Footfall{Db: *dbInstance})

	sampleService := footfallInstance.GetISample()
	if useMockSample {
		sampleService = mockISample
	}

	alertService := footfallInstance.GetIAlert()
	if useMockAlert {
		alertService = mockIAlert
	}

	analyticsService := footfallInstance.GetIAnalytics()
	if useMockAnalytics {
		analyticsService = mockIAnalytics
	}

	footfallInstance.WithServices(ServiceOpts{
		Store:     footfallInstance.GetIStore(),
		Config:    footfallInstance.GetIConfig(),
		Sample:    sampleService,
		Alert:     alertService,
		Analytics: analyticsService,
	})

	return ctrl, footfallInstance, mockISample, mockIAlert, mockIAnalytics
}

// seedStore creates an active store owned by a fresh account, so sample,
// config and alert rows pass the foreign key checks.
func seedStore(t *testing.T, f *Footfall, capacity int) *models.Store {
	t.Helper()

	ownerID := uuid.NewString()
	store, err := f.Store.CreateStore(ownerID, &models.Store{
		Name:      "Test Store",
		Location:  "Test Street 1",
		TillCount: 4,
		Capacity:  capacity,
	})
	require.NoError(t, err)
	return store
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
