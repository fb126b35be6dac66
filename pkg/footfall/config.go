package footfall

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/models"
)

// DefaultStoreConfig is used for stores without a thresholds row. The
// bands keep the three-tier escalation: medium conditions nudge staffing,
// high/critical demand it.
var DefaultStoreConfig = models.StoreConfig{
	QueueMediumLength:    6,
	QueueHighLength:      10,
	QueueCriticalLength:  15,
	OccupancyMediumRatio: 0.6,
	OccupancyHighRatio:   0.85,
	WaitTimeMediumBound:  10.0,
	TillQueueThreshold:   8,
}

func (f *Footfall) upsertConfig(storeID string, input *models.StoreConfig) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFootfallCore,
		zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallConfig),
	)

	config := models.StoreConfig{
		StoreID:              storeID,
		QueueMediumLength:    input.QueueMediumLength,
		QueueHighLength:      input.QueueHighLength,
		QueueCriticalLength:  input.QueueCriticalLength,
		OccupancyMediumRatio: input.OccupancyMediumRatio,
		OccupancyHighRatio:   input.OccupancyHighRatio,
		WaitTimeMediumBound:  input.WaitTimeMediumBound,
		TillQueueThreshold:   input.TillQueueThreshold,
	}

	logger.Info("Received config for store", zap.Reflect("config", config))

	err := f.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		UpdateAll: true,
	}).Create(&config).Error

	if err == nil {
		logger.Info("Upserted config for store", zap.Reflect("config", config))
	}

	return err
}

func (f *Footfall) getStoreConfig(storeID string) (*models.StoreConfig, error) {
	var config models.StoreConfig
	err := f.Db.Conn.First(&config, "store_id = ?", storeID).Error
	return &config, err
}

// storeConfigOrDefault never fails: a store without a thresholds row gets
// the service defaults.
func (f *Footfall) storeConfigOrDefault(storeID string) models.StoreConfig {
	config, err := f.getStoreConfig(storeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			common.GetLoggerWith(
				common.LoggerNameFootfallCore,
				zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallConfig),
			).Warn("Falling back to default thresholds", zap.String("store_id", storeID), zap.Error(err))
		}
		fallback := DefaultStoreConfig
		fallback.StoreID = storeID
		return fallback
	}
	return *config
}

type IConfigImpl struct {
	footfall *Footfall
}

func (ic *IConfigImpl) UpsertConfig(storeID string, input *models.StoreConfig) error {
	return ic.footfall.upsertConfig(storeID, input)
}

func (ic *IConfigImpl) GetStoreConfig(storeID string) (*models.StoreConfig, error) {
	return ic.footfall.getStoreConfig(storeID)
}

func (f *Footfall) GetIConfig() IConfig {
	return &IConfigImpl{footfall: f}
}
