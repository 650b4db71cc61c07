package openapi

import (
	"encoding/json"
	"math"
)

// knownSchemaKeys lists the keywords that map onto typed Schema fields.
var knownSchemaKeys = map[string]bool{
	"$ref": true, "type": true, "format": true, "title": true, "description": true,
	"default": true, "example": true, "examples": true, "nullable": true,
	"deprecated": true, "readOnly": true, "writeOnly": true, "multipleOf": true,
	"minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true,
	"minLength": true, "maxLength": true, "pattern": true, "items": true,
	"additionalItems": true, "minItems": true, "maxItems": true, "uniqueItems": true,
	"properties": true, "required": true, "additionalProperties": true,
	"minProperties": true, "maxProperties": true, "enum": true, "const": true,
	"allOf": true, "oneOf": true, "anyOf": true, "not": true,
	"discriminator": true, "externalDocs": true,
}

// Apply copies the keywords of a raw JSON Schema object onto s, overwriting
// fields that are already set. Values whose shape does not fit the typed
// field are kept verbatim in Extra.
func (s *Schema) Apply(raw map[string]any) {
	for key, value := range raw {
		if !s.applyKeyword(key, value) {
			if s.Extra == nil {
				s.Extra = make(map[string]any)
			}
			s.Extra[key] = value
		}
	}
}

// applyKeyword sets a single typed field and reports whether the value fit.
func (s *Schema) applyKeyword(key string, value any) bool {
	switch key {
	case "$ref":
		return setString(&s.Ref, value)
	case "type":
		switch v := value.(type) {
		case string:
			s.Type = TypeString(v)
			return true
		case []string:
			s.Type = TypeArray(v...)
			return true
		case []any:
			types := make([]string, 0, len(v))
			for _, t := range v {
				str, ok := t.(string)
				if !ok {
					return false
				}
				types = append(types, str)
			}
			s.Type = TypeArray(types...)
			return true
		}
		return false
	case "format":
		return setString(&s.Format, value)
	case "title":
		return setString(&s.Title, value)
	case "description":
		return setString(&s.Description, value)
	case "pattern":
		return setString(&s.Pattern, value)
	case "default":
		s.Default = value
		return true
	case "example":
		s.Example = value
		return true
	case "const":
		s.Const = value
		return true
	case "examples":
		list, ok := toList(value)
		if !ok {
			list = []any{value}
		}
		s.Examples = list
		return true
	case "enum":
		list, ok := toList(value)
		if ok {
			s.Enum = list
		}
		return ok
	case "nullable":
		return setBool(&s.Nullable, value)
	case "deprecated":
		return setBool(&s.Deprecated, value)
	case "readOnly":
		return setBool(&s.ReadOnly, value)
	case "writeOnly":
		return setBool(&s.WriteOnly, value)
	case "uniqueItems":
		return setBool(&s.UniqueItems, value)
	case "exclusiveMinimum":
		return setBool(&s.ExclusiveMinimum, value)
	case "exclusiveMaximum":
		return setBool(&s.ExclusiveMaximum, value)
	case "multipleOf":
		return setFloat(&s.MultipleOf, value)
	case "minimum":
		return setFloat(&s.Minimum, value)
	case "maximum":
		return setFloat(&s.Maximum, value)
	case "minLength":
		return setInt(&s.MinLength, value)
	case "maxLength":
		return setInt(&s.MaxLength, value)
	case "minItems":
		return setInt(&s.MinItems, value)
	case "maxItems":
		return setInt(&s.MaxItems, value)
	case "minProperties":
		return setInt(&s.MinProperties, value)
	case "maxProperties":
		return setInt(&s.MaxProperties, value)
	case "required":
		list, ok := toList(value)
		if !ok {
			if names, isStrings := value.([]string); isStrings {
				s.Required = append([]string{}, names...)
				return true
			}
			return false
		}
		names := make([]string, 0, len(list))
		for _, item := range list {
			name, isString := item.(string)
			if !isString {
				return false
			}
			names = append(names, name)
		}
		s.Required = names
		return true
	case "items", "additionalItems", "additionalProperties", "not",
		"properties", "allOf", "oneOf", "anyOf", "discriminator", "externalDocs":
		return s.applyNested(key, value)
	}
	return false
}

// applyNested decodes structured keywords through their JSON form.
func (s *Schema) applyNested(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	var target any
	switch key {
	case "items":
		target = &s.Items
	case "additionalItems":
		target = &s.AdditionalItems
	case "additionalProperties":
		target = &s.AdditionalProperties
	case "not":
		target = &s.Not
	case "properties":
		target = &s.Properties
	case "allOf":
		target = &s.AllOf
	case "oneOf":
		target = &s.OneOf
	case "anyOf":
		target = &s.AnyOf
	case "discriminator":
		target = &s.Discriminator
	case "externalDocs":
		target = &s.ExternalDocs
	default:
		return false
	}
	return json.Unmarshal(data, target) == nil
}

func setString(dst *string, value any) bool {
	v, ok := value.(string)
	if ok {
		*dst = v
	}
	return ok
}

func setBool(dst *bool, value any) bool {
	v, ok := value.(bool)
	if ok {
		*dst = v
	}
	return ok
}

func setFloat(dst **float64, value any) bool {
	v, ok := ToFloat(value)
	if ok {
		*dst = &v
	}
	return ok
}

func setInt(dst **int, value any) bool {
	f, ok := ToFloat(value)
	if !ok || f != math.Trunc(f) {
		return false
	}
	v := int(f)
	*dst = &v
	return true
}

func toList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return append([]any{}, v...), true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	}
	return nil, false
}

// ToFloat converts any Go or decoded JSON/YAML number to float64.
func ToFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
