// Package validation checks externally supplied entity payloads before they
// enter the engine. Alert definitions arrive as JSON criteria blobs from the
// profile store and are validated against a schema.
package validation

import (
	"fmt"
	"strings"

	stderrors "github.com/Growthlabsg/venturematch/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

const alertSchema = `{
	"type": "object",
	"properties": {
		"keywords":         {"type": "array", "items": {"type": "string"}},
		"locations":        {"type": "array", "items": {"type": "string"}},
		"jobTypes":         {"type": "array", "items": {"type": "string", "enum": ["full-time", "part-time", "contract", "internship"]}},
		"experienceLevels": {"type": "array", "items": {"type": "string", "enum": ["entry", "mid", "senior", "lead", "executive"]}},
		"remoteModes":      {"type": "array", "items": {"type": "string", "enum": ["remote", "hybrid", "onsite"]}},
		"salaryMin":        {"type": "integer", "minimum": 0},
		"salaryMax":        {"type": "integer", "minimum": 0},
		"currency":         {"type": "string", "minLength": 3, "maxLength": 3},
		"skills":           {"type": "array", "items": {"type": "string"}},
		"enabled":          {"type": "boolean"}
	},
	"additionalProperties": false
}`

var alertSchemaLoader = gojsonschema.NewStringLoader(alertSchema)

// ValidateAlertDefinition validates a raw alert criteria document. A nil
// return means the document is safe to unmarshal into models.Alert.
func ValidateAlertDefinition(raw []byte) error {
	result, err := gojsonschema.Validate(alertSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return stderrors.NewAlertInvalidError(fmt.Sprintf("schema validation error: %v", err))
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return stderrors.NewAlertInvalidError(strings.Join(msgs, "; "))
}
