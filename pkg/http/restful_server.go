package http

import (
	"frostline.xyz/fridge-bridge/pkg/bridge"
	"github.com/gin-gonic/gin"
)

type RestfulServer struct {
	Server *gin.Engine
	Bridge *bridge.Bridge
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	// The ingestion contract switches on path only, so every method reaches
	// the handlers, and unknown paths answer 400 rather than 404.
	rs.Server.Any("/sobjects/Update", rs.UpsertDevice)
	rs.Server.Any("/sobjects/Case", rs.CreateCase)

	rs.Server.NoRoute(rs.Unsupported)
}
