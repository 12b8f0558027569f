package emit

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"voicegen/internal/catalog"
	"voicegen/internal/classify"
)

func sampleCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Overrides: []catalog.Entry{
			{Lang: "eng", VoiceID: "en-US-Wavenet-B", Description: "English (US)", Pitch: classify.PitchLow},
		},
		Standard: []catalog.Entry{
			{Lang: "eng", VoiceID: "en-US-Standard-A", Description: "English (US)", Pitch: classify.PitchHigh},
			{Lang: "deu", VoiceID: "de-DE-Standard-B", Description: "German (Germany)", Pitch: classify.PitchLow},
		},
		Enhanced: []catalog.Entry{
			{Lang: "eng", VoiceID: "en-US-Wavenet-B", Description: "English (US)", Pitch: classify.PitchLow},
		},
		Premium: nil,
	}
}

func TestEmitParsesAsGo(t *testing.T) {
	src, err := Emit(sampleCatalog(), Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "voicetable.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
}

func TestEmitContent(t *testing.T) {
	src, err := Emit(sampleCatalog(), Options{PackageName: "langdata"})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	text := string(src)

	for _, want := range []string{
		"// Code generated by voicegen. DO NOT EDIT.",
		"package langdata",
		"var Overrides = []Entry{",
		"var StandardVoices = []Entry{",
		"var EnhancedVoices = []Entry{",
		"var PremiumVoices = []Entry{",
		`{Lang: "eng", Voice: Voice{ID: "en-US-Wavenet-B", Description: "English (US)", Pitch: LowPitch}}`,
		`{Lang: "deu", Voice: Voice{ID: "de-DE-Standard-B", Description: "German (Germany)", Pitch: LowPitch}}`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("generated source missing %q\n%s", want, text)
		}
	}
}

func TestEmitPreservesOrder(t *testing.T) {
	src, err := Emit(sampleCatalog(), Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	text := string(src)
	first := strings.Index(text, "en-US-Standard-A")
	second := strings.Index(text, "de-DE-Standard-B")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("standard table order not preserved (indices %d, %d)", first, second)
	}
}

func TestEmitDeterministic(t *testing.T) {
	a, err := Emit(sampleCatalog(), Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	b, err := Emit(sampleCatalog(), Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("two emissions of the same catalog differ")
	}
}

func TestEmitEmptyCatalog(t *testing.T) {
	src, err := Emit(&catalog.Catalog{}, Options{})
	if err != nil {
		t.Fatalf("Emit returned error: %v", err)
	}
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "voicetable.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
}

func TestEmitNilCatalog(t *testing.T) {
	if _, err := Emit(nil, Options{}); err == nil {
		t.Fatal("expected error for nil catalog")
	}
}
