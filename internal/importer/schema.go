package importer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// companySchema describes the JSON form of domain.CompanyData. Every field
// is optional and unknown fields are allowed.
const companySchema = `{
  "type": "object",
  "definitions": {
    "text": {"type": "string", "maxLength": 20000},
    "list": {"type": "array", "items": {"type": "string"}},
    "pair": {
      "type": "array",
      "items": {"type": "object", "additionalProperties": {"type": "string"}}
    }
  },
  "properties": {
    "name": {"$ref": "#/definitions/text"},
    "tagline": {"$ref": "#/definitions/text"},
    "industry": {"$ref": "#/definitions/text"},
    "about": {"$ref": "#/definitions/text"},
    "vision": {"$ref": "#/definitions/text"},
    "mission": {"$ref": "#/definitions/text"},
    "contact": {"$ref": "#/definitions/text"},
    "directorName": {"$ref": "#/definitions/text"},
    "directorRole": {"$ref": "#/definitions/text"},
    "directorMessage": {"$ref": "#/definitions/text"},
    "infrastructure": {"$ref": "#/definitions/text"},
    "history": {"$ref": "#/definitions/pair"},
    "legalities": {"$ref": "#/definitions/list"},
    "values": {"$ref": "#/definitions/list"},
    "services": {"$ref": "#/definitions/pair"},
    "advantages": {"$ref": "#/definitions/pair"},
    "teamMembers": {"$ref": "#/definitions/pair"},
    "projects": {"$ref": "#/definitions/pair"},
    "clients": {"$ref": "#/definitions/list"}
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(companySchema))
})

// Validate checks a JSON document against the company schema and reports
// every violation in one error.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("invalid company schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("company data invalid: %s", strings.Join(errs, "; "))
	}
	return nil
}
