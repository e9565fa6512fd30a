package components

import (
	"encoding/json"

	"farida_law_site_go/logger"

	"go.uber.org/zap"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// json.Marshal escapes <, > and &, so the result is safe inside a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("failed to marshal JSON", zap.Error(err))
		return "{}"
	}
	return string(b)
}
