package hxattr

import (
	"errors"
	"testing"

	"github.com/pthm/hxattr/lib/encoding"
)

func TestManifestRoundTrip(t *testing.T) {
	enc, err := NewEncoder([]byte("manifest-key"))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	m, err := CompileManifest("Card", "card.go", []byte(`title={ t } count={ n := len(items); n }`), true)
	if err != nil {
		t.Fatalf("CompileManifest failed: %v", err)
	}

	encoded, err := enc.Encode(m)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	loaded, attrs, err := LoadManifest(enc, encoded)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if loaded.Tag != "Card" || !loaded.Custom {
		t.Errorf("loaded header = %q custom=%v", loaded.Tag, loaded.Custom)
	}
	if len(attrs) != 2 || attrs[1].ValueSource() != "{ n := len(items); n }" {
		t.Errorf("loaded attributes = %v", attrs)
	}
}

func TestLoadManifestRevalidates(t *testing.T) {
	enc, _ := NewEncoder([]byte("manifest-key"))

	// A custom element manifest with a dash-joined key, signed with the
	// right key but never compiled.
	m := &encoding.Manifest{
		Tag:    "Card",
		Custom: true,
		Attrs:  []encoding.Entry{{Key: []string{"sub", "title"}}},
	}
	encoded, err := enc.Encode(m)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, _, err := LoadManifest(enc, encoded); !IsValidationError(err) {
		t.Errorf("LoadManifest = %v, want validation error", err)
	}
}

func TestLoadManifestWrongKey(t *testing.T) {
	enc, _ := NewEncoder([]byte("manifest-key"))
	other, _ := NewEncoder([]byte("another-key"))

	m, err := CompileManifest("input", "", []byte(`disabled`), false)
	if err != nil {
		t.Fatalf("CompileManifest failed: %v", err)
	}
	encoded, _ := enc.Encode(m)

	if _, _, err := LoadManifest(other, encoded); !IsManifestError(err) {
		t.Errorf("LoadManifest = %v, want manifest error", err)
	}
	if _, _, err := LoadManifest(enc, "garbage"); !IsManifestError(err) {
		t.Errorf("LoadManifest(garbage) = %v, want manifest error", err)
	}
}

func TestLoadManifestRejectsMalformedEntries(t *testing.T) {
	enc, _ := NewEncoder([]byte("manifest-key"))

	entries := map[string]encoding.Entry{
		"empty key":          {},
		"quoted segment":     {Key: []string{`a"b`}},
		"injected statement": {Key: []string{"id"}, Block: "{ 1 }", Stmts: []encoding.Stmt{{Source: "1); os.Exit(1", Expr: true}}},
	}
	for name, entry := range entries {
		t.Run(name, func(t *testing.T) {
			encoded, err := enc.Encode(&encoding.Manifest{Tag: "div", Attrs: []encoding.Entry{entry}})
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			_, attrs, err := LoadManifest(enc, encoded)
			if !IsManifestError(err) {
				t.Fatalf("LoadManifest = %v, %v; want manifest error", attrs, err)
			}
			if !errors.Is(err, ErrInvalidManifest) {
				t.Errorf("error %v does not wrap ErrInvalidManifest", err)
			}
		})
	}
}
