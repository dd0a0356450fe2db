package bridge

import (
	"errors"

	"frostline.xyz/fridge-bridge/pkg/common"
	"frostline.xyz/fridge-bridge/pkg/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// createCase runs the two-step sequence: ensure the referenced device row
// exists (provisioning it with defaults if absent), then insert the case row.
// The sequence is not transactional; a case-insert failure after provisioning
// leaves the device row committed.
func (b *Bridge) createCase(fields models.Fields) (string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameBridgeCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCase),
	)

	subject, _ := fields.Text(models.FieldSubject)
	description, _ := fields.Text(models.FieldDescription)
	if validateRequiredText(&subject) != nil || validateRequiredText(&description) != nil {
		return "", &BadRequestError{Reason: "'subject' and 'description' fields required"}
	}

	related, _ := fields.Object(models.FieldRelatedDevice)
	deviceID, _ := related.Text(models.FieldDeviceID)
	if err := validateRequiredText(&deviceID); err != nil {
		return "", &BadRequestError{Reason: "'relatedDevice.deviceId' field required"}
	}

	logger.Info("Received case submission",
		zap.String("subject", subject), zap.String("device_id", deviceID))

	var existing models.Device
	err := b.Db.Conn.First(&existing, "device_id = ?", deviceID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		device := models.DefaultDevice(deviceID)
		if err := b.Db.Conn.Create(&device).Error; err != nil {
			return "", &StoreError{Err: err}
		}
		logger.Info("Provisioned device with defaults", zap.String("device_id", deviceID))
	case err != nil:
		return "", &StoreError{Err: err}
	}

	record := models.Case{
		Subject:         subject,
		Description:     description,
		RelatedDeviceID: deviceID,
	}
	if err := b.Db.Conn.Create(&record).Error; err != nil {
		return "", &StoreError{Err: err}
	}

	logger.Info("Created case",
		zap.String("case_id", record.ID), zap.String("device_id", deviceID))

	return record.ID, nil
}

type ICaseImpl struct {
	bridge *Bridge
}

func (ic *ICaseImpl) CreateCase(fields models.Fields) (string, error) {
	return ic.bridge.createCase(fields)
}

func (b *Bridge) GetICase() ICase {
	return &ICaseImpl{bridge: b}
}
