package tools

import "testing"

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema[CalculatorInput]()

	if schema["type"] != "object" {
		t.Errorf("schema type = %v, want object", schema["type"])
	}
	if schema["additionalProperties"] != false {
		t.Errorf("additionalProperties = %v, want false", schema["additionalProperties"])
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties map: %v", schema)
	}
	expr, ok := props["expression"].(map[string]any)
	if !ok {
		t.Fatalf("schema missing 'expression' property: %v", props)
	}
	if expr["type"] != "string" {
		t.Errorf("expression type = %v, want string", expr["type"])
	}
	if desc, _ := expr["description"].(string); desc == "" {
		t.Error("expression property has no description")
	}

	required, ok := schema["required"].([]any)
	if !ok || len(required) == 0 {
		t.Fatalf("schema has no required list: %v", schema)
	}
	found := false
	for _, name := range required {
		if name == "expression" {
			found = true
		}
	}
	if !found {
		t.Error("'expression' not marked required")
	}
}
