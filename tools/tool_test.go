package tools

import "testing"

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewCalculatorTool(CalculatorConfig{}))
	registry.Register(NewConverterTool(ConverterConfig{}))

	if got := registry.Get("calculator"); got == nil {
		t.Fatal("Get(\"calculator\") returned nil")
	}
	if got := registry.Get("unit_converter"); got == nil {
		t.Fatal("Get(\"unit_converter\") returned nil")
	}
	if got := registry.Get("missing"); got != nil {
		t.Errorf("Get(\"missing\") = %v, want nil", got)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewConverterTool(ConverterConfig{}))
	registry.Register(NewCalculatorTool(CalculatorConfig{}))
	registry.Register(NewScraperTool(ScraperConfig{}))

	list := registry.List()
	if len(list) != 3 {
		t.Fatalf("List returned %d tools, want 3", len(list))
	}
	want := []string{"calculator", "unit_converter", "webpage_scraper"}
	for i, tool := range list {
		if tool.Name() != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, tool.Name(), want[i])
		}
	}
}
