package models

const (
	StatusPending   = "Pendiente"
	StatusInTransit = "En tránsito"
	StatusDelivered = "Entregado"
	StatusCancelled = "Cancelado"
)

// ShipmentStatus represents shipment_statuses table
type ShipmentStatus struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	Key     string `gorm:"size:50;not null;unique"`
	Label   string `gorm:"size:50;not null"`
	IsFinal bool   `gorm:"not null"`
}

// KnownStatuses seeds the lookup table. Anything else the backend reports is
// added later as a non-final status.
func KnownStatuses() []ShipmentStatus {
	return []ShipmentStatus{
		{Key: StatusPending, Label: StatusPending},
		{Key: StatusInTransit, Label: StatusInTransit},
		{Key: StatusDelivered, Label: StatusDelivered, IsFinal: true},
		{Key: StatusCancelled, Label: StatusCancelled, IsFinal: true},
	}
}
