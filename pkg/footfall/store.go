package footfall

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/footfall-service/pkg/common"
	"liyu1981.xyz/footfall-service/pkg/models"
)

func (f *Footfall) createStore(ownerID string, input *models.Store) (*models.Store, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFootfallCore,
		zap.String(common.LoggerFieldFootfallCategory, common.LoggerCategoryFootfallStore),
	)

	store := models.Store{
		StoreID:     input.StoreID,
		OwnerID:     ownerID,
		Name:        input.Name,
		Location:    input.Location,
		TillCount:   input.TillCount,
		Capacity:    input.Capacity,
		EntryPoints: input.EntryPoints,
		OpeningHour: input.OpeningHour,
		ClosingHour: input.ClosingHour,
		IsActive:    true,
	}
	if store.StoreID == "" {
		store.StoreID = uuid.NewString()
	}

	logger.Info("Received store for owner", zap.Reflect("store", store))

	if err := f.Db.Conn.Create(&store).Error; err != nil {
		return nil, err
	}

	logger.Info("Created store for owner", zap.Reflect("store", store))
	return &store, nil
}

// getStore is the ownership gate: it finds the store only when it exists,
// is active and belongs to ownerID, collapsing every other case into
// ErrStoreNotFound.
func (f *Footfall) getStore(ownerID string, storeID string) (*models.Store, error) {
	var store models.Store
	err := f.Db.Conn.
		First(&store, "store_id = ? AND owner_id = ? AND is_active = ?", storeID, ownerID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (f *Footfall) listStores(ownerID string) ([]models.Store, error) {
	var stores []models.Store
	err := f.Db.Conn.
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at asc").
		Find(&stores).Error
	return stores, err
}

// deactivateStore soft-deletes: the row stays so samples and alerts keep
// their referential history.
func (f *Footfall) deactivateStore(ownerID string, storeID string) error {
	res := f.Db.Conn.Model(&models.Store{}).
		Where("store_id = ? AND owner_id = ? AND is_active = ?", storeID, ownerID, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStoreNotFound
	}
	return nil
}

type IStoreImpl struct {
	footfall *Footfall
}

func (is *IStoreImpl) CreateStore(ownerID string, input *models.Store) (*models.Store, error) {
	return is.footfall.createStore(ownerID, input)
}

func (is *IStoreImpl) GetStore(ownerID string, storeID string) (*models.Store, error) {
	return is.footfall.getStore(ownerID, storeID)
}

func (is *IStoreImpl) ListStores(ownerID string) ([]models.Store, error) {
	return is.footfall.listStores(ownerID)
}

func (is *IStoreImpl) DeactivateStore(ownerID string, storeID string) error {
	return is.footfall.deactivateStore(ownerID, storeID)
}

func (f *Footfall) GetIStore() IStore {
	return &IStoreImpl{footfall: f}
}
