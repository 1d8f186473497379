package models

import "time"

// Shipment is the local copy of a backend shipment, keyed by its code.
type Shipment struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	RemoteID      int64  `gorm:"not null;index"`
	Code          string `gorm:"size:100;not null;unique"`
	ShippedOn     string `gorm:"size:32"`
	Description   string `gorm:"size:256"`
	SenderName    string `gorm:"size:100"`
	ReceiverName  string `gorm:"size:100"`
	OriginID      int64
	DestinationID int64
	OwnerID       string `gorm:"size:64;index"`
	LastSyncedAt  *time.Time

	// Foreign keys
	StatusID *uint
	Status   *ShipmentStatus `gorm:"foreignKey:StatusID;references:ID"`
}
