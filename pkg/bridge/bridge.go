// Package bridge holds the reconciliation core: deciding between the
// insert-with-defaults and partial-update paths for device telemetry, and
// guaranteeing a referenced device row exists before a case row is created.
package bridge

import (
	"frostline.xyz/fridge-bridge/pkg/db"
	"frostline.xyz/fridge-bridge/pkg/models"
)

type IDevice interface {
	UpsertDevice(fields models.Fields) error
}

type ICase interface {
	CreateCase(fields models.Fields) (string, error)
}

type Bridge struct {
	Db     db.DB
	Device IDevice
	Case   ICase
}

type ServiceOpts struct {
	Device IDevice
	Case   ICase
}

func (b *Bridge) WithServices(opts ServiceOpts) *Bridge {
	if opts.Device != nil {
		b.Device = opts.Device
	}
	if opts.Case != nil {
		b.Case = opts.Case
	}
	return b
}
