package golden

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFixtures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape")
	defer teardown()
	//
	fixtures, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures found in testdata")
	}
	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			got, err := fx.Run()
			if err != nil {
				t.Fatalf("run fixture: %v", err)
			}
			if err := Compare(got, fx.Output); err != nil {
				t.Fatalf("%v\ngot=%U\nwant=%U", err, got, fx.Output)
			}
		})
	}
}

func TestInvalidFixture(t *testing.T) {
	fx := Fixture{Context: Context{Operation: "translate"}, Input: []uint32{0x0627}}
	if err := fx.validate(); err == nil {
		t.Error("expected unknown operation to be rejected")
	}
	fx = Fixture{Context: Context{Operation: OpReshape}, Input: []uint32{0xD800}}
	if err := fx.validate(); err == nil {
		t.Error("expected surrogate to be rejected")
	}
	fx = Fixture{Context: Context{Operation: OpReshape, Ligatures: "glyphs"}, Input: []uint32{0x0627}}
	if _, err := fx.Run(); err == nil {
		t.Error("expected unknown ligature group to be rejected")
	}
}

func TestCompare(t *testing.T) {
	if err := Compare([]uint32{1, 2}, []uint32{1, 2}); err != nil {
		t.Error(err)
	}
	if err := Compare([]uint32{1, 2}, []uint32{1, 3}); err == nil {
		t.Error("expected mismatch")
	}
	if err := Compare([]uint32{1}, []uint32{1, 2}); err == nil {
		t.Error("expected length mismatch")
	}
}
