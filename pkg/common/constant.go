package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyBridgeDBType      string = "BRIDGE_DB_TYPE"
	EnvKeyBridgeDbPath      string = "BRIDGE_DB_PATH"
	EnvKeyBridgeDatabaseURL string = "BRIDGE_DATABASE_URL"

	EnvKeyBridgeHttpHostPort string = "BRIDGE_HTTP_HOST_PORT"

	LoggerNameBridgeCore    string = "bridge_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerFieldCategory     string = "category"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryCase      string = "case"
)
