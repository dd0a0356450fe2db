package http

import (
	"errors"
	"net/http"

	"frostline.xyz/fridge-bridge/pkg/bridge"
	"frostline.xyz/fridge-bridge/pkg/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope every /sobjects endpoint answers with, success or
// failure. Failure responses never mention steps that already completed.
type Response struct {
	State   string `json:"state"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func respond(c *gin.Context, code int, resp Response) {
	c.Header("Cache-Control", "no-cache")
	c.JSON(code, resp)
}

func respondError(c *gin.Context, err error) {
	var badRequest *bridge.BadRequestError
	if errors.As(err, &badRequest) {
		respond(c, http.StatusBadRequest, Response{State: "error", Message: badRequest.Reason})
		return
	}
	respond(c, http.StatusInternalServerError, Response{State: "error", Message: err.Error()})
}

func logRequest(c *gin.Context) {
	logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
	logger.Info("Request received",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
	)
}

func (rs *RestfulServer) UpsertDevice(c *gin.Context) {
	logRequest(c)

	fields, err := normalizeRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := rs.Bridge.Device.UpsertDevice(fields); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, Response{State: "done", Message: ""})
}

func (rs *RestfulServer) CreateCase(c *gin.Context) {
	logRequest(c)

	fields, err := normalizeRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := rs.Bridge.Case.CreateCase(fields)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, Response{State: "done", Message: "", ID: id})
}

func (rs *RestfulServer) Unsupported(c *gin.Context) {
	respond(c, http.StatusBadRequest, Response{State: "error", Message: "Unsupported request"})
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
