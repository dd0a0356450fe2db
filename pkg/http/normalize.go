package http

import (
	"encoding/json"
	"io"

	"frostline.xyz/fridge-bridge/pkg/bridge"
	"frostline.xyz/fridge-bridge/pkg/models"
	"github.com/gin-gonic/gin"
)

// normalizeRequest produces the canonical field mapping for a submission. A
// request body that parses as a JSON object takes precedence; otherwise the
// URL query parameters are used verbatim. A request offering neither is a
// bad request.
func normalizeRequest(c *gin.Context) (models.Fields, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err == nil && len(body) > 0 {
		var obj map[string]any
		if json.Unmarshal(body, &obj) == nil && obj != nil {
			return models.FieldsFromJSON(obj), nil
		}
	}

	query := c.Request.URL.Query()
	if len(query) > 0 {
		return models.FieldsFromQuery(query), nil
	}

	return nil, &bridge.BadRequestError{Reason: "JSON or query required"}
}
