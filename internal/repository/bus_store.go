package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mybusnow/internal/models"
)

// GormBusStore keeps bus snapshots in postgres.
type GormBusStore struct {
	db *gorm.DB
}

func NewGormBusStore(db *gorm.DB) *GormBusStore {
	return &GormBusStore{db: db}
}

func (s *GormBusStore) List(ctx context.Context) ([]models.Bus, error) {
	var buses []models.Bus
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&buses).Error; err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	return buses, nil
}

func (s *GormBusStore) Create(ctx context.Context, bus *models.Bus) error {
	if bus.Occupancy == "" {
		bus.Occupancy = models.OccupancyLow
	}
	if err := s.db.WithContext(ctx).Create(bus).Error; err != nil {
		return fmt.Errorf("create bus: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of update to the bus.
func (s *GormBusStore) Update(ctx context.Context, busID uint, update BusUpdate) (models.Bus, error) {
	var bus models.Bus
	if err := s.db.WithContext(ctx).First(&bus, busID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bus{}, ErrNotFound
		}
		return models.Bus{}, fmt.Errorf("find bus: %w", err)
	}

	ApplyBusUpdate(&bus, update)
	if err := s.db.WithContext(ctx).Save(&bus).Error; err != nil {
		return models.Bus{}, fmt.Errorf("save bus: %w", err)
	}
	return bus, nil
}

func (s *GormBusStore) Delete(ctx context.Context, busID uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Bus{}, busID)
	if res.Error != nil {
		return fmt.Errorf("delete bus: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplyBusUpdate copies the non-nil fields of update onto bus.
func ApplyBusUpdate(bus *models.Bus, update BusUpdate) {
	if update.RouteNumber != nil {
		bus.RouteNumber = *update.RouteNumber
	}
	if update.CurrentLat != nil {
		bus.CurrentLat = *update.CurrentLat
	}
	if update.CurrentLng != nil {
		bus.CurrentLng = *update.CurrentLng
	}
	if update.NextStop != nil {
		bus.NextStop = *update.NextStop
	}
	if update.EtaMinutes != nil {
		bus.EtaMinutes = *update.EtaMinutes
	}
	if update.Occupancy != nil {
		bus.Occupancy = *update.Occupancy
	}
}
