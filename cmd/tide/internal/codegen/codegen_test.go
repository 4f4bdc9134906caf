package codegen

import (
	"strings"
	"testing"

	"github.com/go-drift/tide/cmd/tide/internal/config"
)

func TestGenerate(t *testing.T) {
	resolved := &config.Resolved{
		ModulePath: "example.com/shop",
		Package:    "state",
		Output:     "tide_gen.go",
		Stores: []config.StoreConfig{
			{Name: "counter", State: "CounterState"},
			{Name: "user_prefs", State: "model.PrefsState", Import: "example.com/shop/model"},
		},
	}

	src, err := Generate(resolved)
	if err != nil {
		t.Fatalf("Generate returned %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by tide gen; DO NOT EDIT.",
		"package state",
		`"example.com/shop/model"`,
		"func CounterStore() (*store.Store[CounterState], bool) {",
		"func UserPrefsStore() (*store.Store[model.PrefsState], bool) {",
		`registry.StoreOf[CounterState](registry.Default, "counter")`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated file missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateNoImports(t *testing.T) {
	resolved := &config.Resolved{
		Package: "state",
		Stores:  []config.StoreConfig{{Name: "cart", State: "CartState"}},
	}

	src, err := Generate(resolved)
	if err != nil {
		t.Fatalf("Generate returned %v", err)
	}
	if strings.Contains(string(src), `""`) {
		t.Error("generated file contains an empty import")
	}
	if !strings.Contains(string(src), "func CartStore()") {
		t.Errorf("generated file missing CartStore accessor:\n%s", src)
	}
}

func TestGenerateFormats(t *testing.T) {
	resolved := &config.Resolved{
		Package: "state",
		Stores:  []config.StoreConfig{{Name: "cart", State: "CartState"}},
	}

	src, err := Generate(resolved)
	if err != nil {
		t.Fatalf("Generate returned %v", err)
	}
	if strings.Contains(string(src), "\n\n\n") {
		t.Error("generated file has unformatted blank runs")
	}
}

func TestAccessor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"counter", "CounterStore"},
		{"user_prefs", "UserPrefsStore"},
		{"cart-items", "CartItemsStore"},
		{"ui", "UiStore"},
	}

	for _, tt := range tests {
		if got := Accessor(tt.name); got != tt.want {
			t.Errorf("Accessor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
