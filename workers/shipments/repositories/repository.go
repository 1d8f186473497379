package repositories

import (
	"errors"
	"fleet-dashboard-service/workers/shipments/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the mirror tables and seeds the known statuses.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.ShipmentStatus{}, &models.Shipment{}); err != nil {
		return err
	}
	statuses := models.KnownStatuses()
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error
}

func (r *Repository) GetAllShipments() ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := r.db.Preload("Status").Find(&shipments).Error
	return shipments, err
}

// GetStatus looks a status up by key, creating it as non-final when missing.
func (r *Repository) GetStatus(key string) (models.ShipmentStatus, error) {
	status := models.ShipmentStatus{Key: key, Label: key}
	err := r.db.Where("key = ?", key).FirstOrCreate(&status).Error
	return status, err
}

// FindByCode returns nil when the shipment has not been mirrored yet.
func (r *Repository) FindByCode(code string) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.Preload("Status").Where("code = ?", code).First(&shipment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

func (r *Repository) SaveShipment(shipment *models.Shipment) error {
	return r.db.Save(shipment).Error
}
