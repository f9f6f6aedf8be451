package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/cferraz/acordaos-tracker/constants"
)

// BuildRecordJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the fixed record shape: every column required,
// nothing extra, absent fields serialized as null.
func BuildRecordJSONSchema() map[string]any {
	props := make(map[string]any, len(columns))
	for _, c := range columns {
		props[c] = nullableString()
	}
	props["data_julgamento"] = map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^\d{2}/\d{2}/\d{4}$`,
	}
	props["estado"] = map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^[A-Z]{2}$`,
	}
	props["decisao_para_banco"] = map[string]any{
		"enum": []any{
			string(constants.Favoravel),
			string(constants.Contraria),
			string(constants.Indeterminado),
			nil,
		},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             Columns(),
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

// CompileRecordSchema compiles the record schema once for reuse across a
// batch.
func CompileRecordSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// ValidateRecord checks a record against the compiled schema.
func ValidateRecord(schema *jsonschema.Schema, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
