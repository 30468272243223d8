// Package schema derives Anthropic tool input schemas from Go struct types.
package schema

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// Generate produces an anthropic.ToolInputSchemaParam from a Go struct type T.
// It uses struct tags (json, jsonschema) to derive the JSON Schema.
func Generate[T any]() anthropic.ToolInputSchemaParam {
	var zero T
	root := resolveRoot(jsonschema.Reflect(&zero))

	var properties map[string]any
	if root.Properties != nil {
		properties = make(map[string]any)
		for pair := root.Properties.Oldest(); pair != nil; pair = pair.Next() {
			prop := make(map[string]any)
			if pair.Value.Type != "" {
				prop["type"] = pair.Value.Type
			}
			if pair.Value.Description != "" {
				prop["description"] = pair.Value.Description
			}
			if len(pair.Value.Enum) > 0 {
				prop["enum"] = pair.Value.Enum
			}
			properties[pair.Key] = prop
		}
	}

	return anthropic.ToolInputSchemaParam{
		Properties: properties,
		Required:   root.Required,
	}
}

// resolveRoot follows the reflector's $ref indirection to the object schema
// it placed under $defs.
func resolveRoot(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Ref != "" && s.Definitions != nil {
		for _, def := range s.Definitions {
			if def.Type == "object" {
				return def
			}
		}
	}
	return s
}
