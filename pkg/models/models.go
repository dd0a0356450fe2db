package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Defaults applied to device rows when a submission (or auto-provisioning)
// leaves a field unset.
const (
	DefaultDoorState   string  = "closed"
	DefaultTemperature float64 = 0
	DefaultHumidity    float64 = 0
	DefaultTimestamp   string  = "2000-01-01T00:00:00Z"
)

// Device holds the last-known telemetry of one physical unit. DeviceID is the
// caller-supplied natural key; rows are never deleted.
type Device struct {
	DeviceID    string  `gorm:"primaryKey" json:"deviceId"`
	DoorState   string  `json:"doorState"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Timestamp   string  `json:"timestamp"`
}

// Case is a support ticket referencing a device. RelatedDeviceID is a logical
// foreign key to devices.device_id, kept consistent by the case handler
// rather than by a declared constraint.
type Case struct {
	ID              string `gorm:"primaryKey" json:"id"`
	Subject         string `json:"subject"`
	Description     string `json:"description"`
	RelatedDeviceID string `gorm:"index" json:"relatedDeviceId"`
}

func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DefaultDevice returns a device row with every telemetry field at its
// documented default.
func DefaultDevice(deviceID string) Device {
	return Device{
		DeviceID:    deviceID,
		DoorState:   DefaultDoorState,
		Temperature: DefaultTemperature,
		Humidity:    DefaultHumidity,
		Timestamp:   DefaultTimestamp,
	}
}
