package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"voicegen/internal/catalog"
	"voicegen/internal/classify"
)

// Options controls the shape of the generated source file.
type Options struct {
	// PackageName is the package clause of the generated file.
	PackageName string
}

const defaultPackageName = "voicetable"

// Emit renders the catalog as a single Go source file: the Pitch, Voice,
// and Entry declarations plus the four ordered tables. Table order is
// emitted exactly as built, and output is gofmt-formatted, so equal
// catalogs always produce byte-identical files.
func Emit(cat *catalog.Catalog, opts Options) ([]byte, error) {
	if cat == nil {
		return nil, fmt.Errorf("emit: nil catalog")
	}
	pkg := strings.TrimSpace(opts.PackageName)
	if pkg == "" {
		pkg = defaultPackageName
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by voicegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString(preamble)

	writeTable(&buf, "Overrides", overridesComment, cat.Overrides)
	writeTable(&buf, "StandardVoices", "StandardVoices ranks baseline-quality voices per detected language.", cat.Standard)
	writeTable(&buf, "EnhancedVoices", "EnhancedVoices ranks enhanced-quality voices per detected language.", cat.Enhanced)
	writeTable(&buf, "PremiumVoices", "PremiumVoices ranks premium-quality voices per detected language.", cat.Premium)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

const preamble = `// Pitch buckets a voice by vocal register.
type Pitch uint8

const (
	LowPitch Pitch = iota
	HighPitch
)

// Voice identifies one synthetic voice offered by the provider.
type Voice struct {
	ID          string
	Description string
	Pitch       Pitch
}

// Entry pairs a detected language code with a candidate voice. Slice order
// is selection order and must not be changed.
type Entry struct {
	Lang  string
	Voice Voice
}

`

const overridesComment = "Overrides is consulted before any tier table, promoting specific voices above their nominal quality tier."

func writeTable(buf *bytes.Buffer, name, comment string, entries []catalog.Entry) {
	fmt.Fprintf(buf, "// %s\n", comment)
	fmt.Fprintf(buf, "var %s = []Entry{\n", name)
	for _, e := range entries {
		fmt.Fprintf(buf, "\t{Lang: %s, Voice: Voice{ID: %s, Description: %s, Pitch: %s}},\n",
			strconv.Quote(e.Lang),
			strconv.Quote(e.VoiceID),
			strconv.Quote(e.Description),
			pitchLiteral(e.Pitch),
		)
	}
	buf.WriteString("}\n\n")
}

func pitchLiteral(p classify.Pitch) string {
	if p == classify.PitchLow {
		return "LowPitch"
	}
	return "HighPitch"
}
