package bridge

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"frostline.xyz/fridge-bridge/pkg/bridge/mocks"
	"frostline.xyz/fridge-bridge/pkg/db"
	"go.uber.org/mock/gomock"
)

func GetMockBridgeWithMemorySqliteDialector(t *testing.T, useMockIDevice, useMockICase bool) (
	*gomock.Controller,
	*Bridge,
	*mocks.MockIDevice,
	*mocks.MockICase,
) {
	ctrl := gomock.NewController(t)

	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockICase := mocks.NewMockICase(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	bridgeInstance := &Bridge{Db: *dbInstance}

	deviceService := bridgeInstance.GetIDevice()
	if useMockIDevice {
		deviceService = mockIDevice
	}

	caseService := bridgeInstance.GetICase()
	if useMockICase {
		caseService = mockICase
	}

	bridgeInstance.WithServices(ServiceOpts{
		Device: deviceService,
		Case:   caseService,
	})

	return ctrl, bridgeInstance, mockIDevice, mockICase
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
