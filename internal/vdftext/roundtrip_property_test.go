package vdftext

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// ============================================================================
// Round-Trip Property Tests
// ============================================================================

var triviaGen = rapid.SampledFrom([]string{
	"", " ", "\t", "\n", "\n\t", "\n\t\t", "\r\n", "  ", "\t\t",
	"\n// note\n", "\n\t// note\n\t",
})

var keyGen = rapid.StringMatching(`[A-Za-z][A-Za-z0-9_]{0,7}`)

// writeRandomPairs assembles syntactically valid VDF text with arbitrary
// trivia between tokens. Sibling keys are drawn distinct because the
// grammar forbids duplicates.
func writeRandomPairs(t *rapid.T, sb *strings.Builder, depth int) {
	keys := rapid.SliceOfNDistinct(keyGen, 0, 3, func(s string) string { return s }).Draw(t, "keys")
	for _, k := range keys {
		sb.WriteString(triviaGen.Draw(t, "lead"))
		sb.WriteString(quoteString(k))

		kind := rapid.IntRange(0, 2).Draw(t, "kind")
		if depth >= 3 && kind == 2 {
			kind = 0
		}
		switch kind {
		case 0:
			sb.WriteString(triviaGen.Draw(t, "mid"))
			sb.WriteString(quoteString(rapid.StringMatching(`[ -~]{0,12}`).Draw(t, "sval")))
		case 1:
			sb.WriteString(triviaGen.Draw(t, "mid"))
			sb.WriteString(strconv.FormatInt(rapid.Int64().Draw(t, "ival"), 10))
		case 2:
			sb.WriteString(triviaGen.Draw(t, "open"))
			sb.WriteString("{")
			writeRandomPairs(t, sb, depth+1)
			sb.WriteString(triviaGen.Draw(t, "close"))
			sb.WriteString("}")
		}
	}
}

// TestPropertyParseSerializePreservesBytes verifies the round-trip law:
// serializing an unmodified parse reproduces the input byte for byte.
func TestPropertyParseSerializePreservesBytes(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		var sb strings.Builder
		writeRandomPairs(t, &sb, 0)
		sb.WriteString(triviaGen.Draw(t, "tail"))
		input := sb.String()

		doc, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("generated document failed to parse: %v\ninput: %q", err, input)
		}
		if got := string(doc.Serialize()); got != input {
			t.Fatalf("round trip changed bytes\n in: %q\nout: %q", input, got)
		}
	})
}

// buildRandomTree populates a section through the mutation API and returns
// the leaf values it wrote, keyed by slash-joined path.
func buildRandomTree(t *rapid.T, sec *Node, prefix string, depth int, leaves map[string]string) {
	keys := rapid.SliceOfNDistinct(keyGen, 0, 3, func(s string) string { return s }).Draw(t, "keys")
	for _, k := range keys {
		kind := rapid.IntRange(0, 2).Draw(t, "kind")
		if depth >= 3 && kind == 2 {
			kind = 0
		}
		switch kind {
		case 0:
			val := rapid.String().Draw(t, "sval")
			if _, err := sec.SetString(k, val); err != nil {
				t.Fatalf("SetString(%q): %v", k, err)
			}
			leaves[prefix+"/"+k] = val
		case 1:
			if _, err := sec.SetInt(k, rapid.Int64().Draw(t, "ival")); err != nil {
				t.Fatalf("SetInt(%q): %v", k, err)
			}
		case 2:
			child, err := sec.EnsureSection(k)
			if err != nil {
				t.Fatalf("EnsureSection(%q): %v", k, err)
			}
			buildRandomTree(t, child, prefix+"/"+k, depth+1, leaves)
		}
	}
}

// TestPropertyCanonicalBuildRoundTrips verifies documents written entirely
// by the mutation API are a serialization fixed point and decode back to
// the values that were set.
func TestPropertyCanonicalBuildRoundTrips(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		doc := NewDocument()
		root, err := doc.EnsureSection("root")
		if err != nil {
			t.Fatalf("EnsureSection: %v", err)
		}
		leaves := make(map[string]string)
		buildRandomTree(t, root, "root", 1, leaves)

		first := doc.Serialize()
		reparsed, err := Parse(first)
		if err != nil {
			t.Fatalf("canonical output failed to parse: %v\nout: %q", err, first)
		}
		if second := reparsed.Serialize(); !bytes.Equal(first, second) {
			t.Fatalf("canonical output is not a fixed point\nfirst:  %q\nsecond: %q", first, second)
		}

		for path, want := range leaves {
			segs := strings.Split(path, "/")
			n, ok := reparsed.Lookup(segs...)
			if !ok {
				t.Fatalf("leaf %q missing after reparse", path)
			}
			got, ok := n.String()
			if !ok {
				t.Fatalf("leaf %q lost its string shape", path)
			}
			if got != want {
				t.Fatalf("leaf %q: got %q, want %q", path, got, want)
			}
		}
	})
}

// TestPropertySetLeafIdempotent verifies writing the same value twice
// produces the same bytes as writing it once.
func TestPropertySetLeafIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		path := rapid.SliceOfN(keyGen, 1, 4).Draw(t, "path")
		val := rapid.String().Draw(t, "val")

		once := NewDocument()
		if err := once.SetString(path, val); err != nil {
			t.Fatalf("SetString: %v", err)
		}
		twice := NewDocument()
		if err := twice.SetString(path, val); err != nil {
			t.Fatalf("SetString: %v", err)
		}
		if err := twice.SetString(path, val); err != nil {
			t.Fatalf("SetString again: %v", err)
		}

		if !bytes.Equal(once.Serialize(), twice.Serialize()) {
			t.Fatalf("repeated set changed bytes\nonce:  %q\ntwice: %q", once.Serialize(), twice.Serialize())
		}
	})
}
