package dataset

import (
	"context"
	"errors"
	"mappulator-service/internal/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedSourceLoadsBundledDataset(t *testing.T) {
	pois, err := EmbeddedSource{}.LoadPOIs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pois) == 0 {
		t.Fatal("bundled dataset is empty")
	}

	seen := map[domain.POIType]bool{}
	for i, p := range pois {
		if p.Distance != nil {
			t.Errorf("record %d has a distance before any refresh", i)
		}
		seen[p.Type] = true
	}
	for _, typ := range domain.Types() {
		if !seen[typ] {
			t.Errorf("bundled dataset has no %q entry", typ)
		}
	}
}

func TestParseJSONPreservesOrder(t *testing.T) {
	doc := `[
		{"name":"B","type":"church","coordinates":{"latitude":1,"longitude":2}},
		{"name":"A","type":"mountain","coordinates":{"latitude":0,"longitude":0}}
	]`

	pois, err := ParseJSON([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pois) != 2 || pois[0].Name != "B" || pois[1].Name != "A" {
		t.Fatalf("order not preserved: %+v", pois)
	}
	if pois[0].Coordinates != (domain.Coordinate{Latitude: 1, Longitude: 2}) {
		t.Fatalf("coordinates = %+v", pois[0].Coordinates)
	}
}

func TestParseJSONValidation(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{"malformed", `{`, "decode json"},
		{"empty name", `[{"name":" ","type":"church","coordinates":{"latitude":1,"longitude":2}}]`, "index 1: name"},
		{"unknown type", `[{"name":"X","type":"castle","coordinates":{"latitude":1,"longitude":2}}]`, "index 1"},
		{"missing longitude", `[{"name":"X","type":"church","coordinates":{"latitude":1}}]`, "latitude and longitude"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("err = %v, want it to mention %q", err, tc.wantMsg)
			}
		})
	}

	_, err := ParseJSON([]byte(`[{"name":"X","type":"castle","coordinates":{"latitude":1,"longitude":2}}]`))
	if !errors.Is(err, domain.ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(path, Bundled(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	fromFile, err := FileSource{Path: path}.LoadPOIs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	embedded, _ := EmbeddedSource{}.LoadPOIs(context.Background())
	if len(fromFile) != len(embedded) {
		t.Fatalf("len = %d, want %d", len(fromFile), len(embedded))
	}

	if _, err := (FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).LoadPOIs(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewS3SourceValidatesOptions(t *testing.T) {
	if _, err := NewS3Source(S3Options{Endpoint: "localhost:9000"}); err == nil {
		t.Fatal("expected error without credentials")
	}
	if _, err := NewS3Source(S3Options{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}); err == nil {
		t.Fatal("expected error without bucket and key")
	}
}
