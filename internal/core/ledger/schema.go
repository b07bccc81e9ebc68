package ledger

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/ledger.schema.json
var ledgerSchema []byte

const ledgerSchemaURL = "https://github.com/aki/kanjinote/ledger.schema.json"

// compiledSchema is cached to avoid recompiling the schema on every load
var compiledSchema *jsonschema.Schema

func compileSchema() (*jsonschema.Schema, error) {
	if compiledSchema != nil {
		return compiledSchema, nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(ledgerSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(ledgerSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(ledgerSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	compiledSchema = schema
	return schema, nil
}

// ValidateYAML validates raw data file content against the ledger schema.
func ValidateYAML(content []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var data any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Round-trip through JSON so the validator only sees JSON types.
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("ledger is not a plain object: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to convert ledger for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
