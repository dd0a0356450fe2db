package main

import (
	"log"
	"os"
	"strings"

	"frostline.xyz/fridge-bridge/pkg/bridge"
	"frostline.xyz/fridge-bridge/pkg/common"
	"frostline.xyz/fridge-bridge/pkg/db"
	bridgeHttp "frostline.xyz/fridge-bridge/pkg/http"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	bridgeDbType := os.Getenv(common.EnvKeyBridgeDBType)
	switch bridgeDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown BRIDGE_DB_TYPE: " + bridgeDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyBridgeHttpHostPort))
	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger := common.GetLogger()

	bridgeCore := bridge.Bridge{
		Db: *dbInstance,
	}
	bridgeCore.WithServices(bridge.ServiceOpts{
		Device: bridgeCore.GetIDevice(),
		Case:   bridgeCore.GetICase(),
	})

	rs := &bridgeHttp.RestfulServer{
		Server: gin.Default(),
		Bridge: &bridgeCore,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
