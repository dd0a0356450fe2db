package bridge

import (
	"errors"

	"frostline.xyz/fridge-bridge/pkg/common"
	"frostline.xyz/fridge-bridge/pkg/models"
	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deviceColumns maps the recognized mutable submission fields to their store
// columns. Every other submitted field is ignored by the upsert.
var deviceColumns = map[string]string{
	models.FieldDoorState:   "door_state",
	models.FieldTemperature: "temperature",
	models.FieldHumidity:    "humidity",
	models.FieldTimestamp:   "timestamp",
}

func validateRequiredText(value *string) z.ZogIssueList {
	var textValidator = z.String().Min(1).Required()
	return textValidator.Validate(value)
}

// scanDeviceFields collects the recognized mutable fields of a submission as
// column/value pairs, strings staying strings and numbers staying numbers.
// Values of any other kind are silently skipped.
func scanDeviceFields(fields models.Fields) map[string]any {
	changes := map[string]any{}
	for field, column := range deviceColumns {
		value, ok := fields[field]
		if !ok {
			continue
		}
		if scalar, ok := value.Scalar(); ok {
			changes[column] = scalar
		}
	}
	return changes
}

func defaultDeviceRow(deviceID string) map[string]any {
	return map[string]any{
		"device_id":   deviceID,
		"door_state":  models.DefaultDoorState,
		"temperature": models.DefaultTemperature,
		"humidity":    models.DefaultHumidity,
		"timestamp":   models.DefaultTimestamp,
	}
}

func (b *Bridge) upsertDevice(fields models.Fields) error {
	logger := common.GetLoggerWith(
		common.LoggerNameBridgeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	deviceID, _ := fields.Text(models.FieldDeviceID)
	if err := validateRequiredText(&deviceID); err != nil {
		return &BadRequestError{Reason: "'deviceId' field required"}
	}

	changes := scanDeviceFields(fields)
	if len(changes) == 0 {
		return &BadRequestError{Reason: "At least one field required"}
	}

	logger.Info("Received device submission",
		zap.String("device_id", deviceID), zap.Reflect("changes", changes))

	var existing models.Device
	err := b.Db.Conn.First(&existing, "device_id = ?", deviceID).Error
	switch {
	case err == nil:
		// Partial update: only the submitted columns change.
		if err := b.Db.Conn.Model(&models.Device{}).
			Where("device_id = ?", deviceID).
			Updates(changes).Error; err != nil {
			return &StoreError{Err: err}
		}
		logger.Info("Updated device", zap.String("device_id", deviceID))
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := defaultDeviceRow(deviceID)
		for column, value := range changes {
			row[column] = value
		}
		if err := b.Db.Conn.Model(&models.Device{}).Create(row).Error; err != nil {
			return &StoreError{Err: err}
		}
		logger.Info("Inserted device", zap.String("device_id", deviceID))
	default:
		return &StoreError{Err: err}
	}

	return nil
}

type IDeviceImpl struct {
	bridge *Bridge
}

func (id *IDeviceImpl) UpsertDevice(fields models.Fields) error {
	return id.bridge.upsertDevice(fields)
}

func (b *Bridge) GetIDevice() IDevice {
	return &IDeviceImpl{bridge: b}
}
