package rules

import (
	"strings"
	"testing"

	"blockpress/internal/converter"
)

func TestPresetRegistryLoads(t *testing.T) {
	r, err := NewPresetRegistry()
	if err != nil {
		t.Fatalf("NewPresetRegistry: %v", err)
	}

	names := r.Names()
	if len(names) == 0 {
		t.Fatal("no embedded presets loaded")
	}
	for _, want := range []string{"plain-quotes", "text-only"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("preset %q missing from %v", want, names)
		}
	}
}

func TestPresetRegistryUnknown(t *testing.T) {
	r, err := NewPresetRegistry()
	if err != nil {
		t.Fatalf("NewPresetRegistry: %v", err)
	}

	_, err = r.Get("nope")
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("Get(nope) = %v, want unknown preset error", err)
	}
}

func TestTextOnlyPresetApplies(t *testing.T) {
	r, err := NewPresetRegistry()
	if err != nil {
		t.Fatalf("NewPresetRegistry: %v", err)
	}
	f, err := r.Get("text-only")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	c := converter.New(converter.Options{}, nil, nil)
	f.Apply(c)

	if _, ok := c.Mappings()["img"]; ok {
		t.Error("img mapping should be removed by text-only preset")
	}
	if _, ok := c.Mappings()["p"]; !ok {
		t.Error("p mapping should survive text-only preset")
	}
}
