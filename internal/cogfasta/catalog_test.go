package cogfasta

import (
	"reflect"
	"strings"
	"testing"
)

const whogFixture = `[J] COG0001 Glutamate-1-semialdehyde 2,1-aminomutase
  Aful:  AF1241
  Hbsp:  VNG0241G VNG6125G
_______
[H] COG0002 Acetylglutamate semialdehyde dehydrogenase
  Eco:  b3958
_______
`

func Test_ParseCatalog(t *testing.T) {
	got, err := ParseCatalog(strings.NewReader(whogFixture))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	want := map[string]Annotation{
		"AF1241":   {Org: "Aful", COG: "COG0001", Fun: "[J]", Desc: "Glutamate-1-semialdehyde 2,1-aminomutase"},
		"VNG0241G": {Org: "Hbsp", COG: "COG0001", Fun: "[J]", Desc: "Glutamate-1-semialdehyde 2,1-aminomutase"},
		"VNG6125G": {Org: "Hbsp", COG: "COG0001", Fun: "[J]", Desc: "Glutamate-1-semialdehyde 2,1-aminomutase"},
		"b3958":    {Org: "Eco", COG: "COG0002", Fun: "[H]", Desc: "Acetylglutamate semialdehyde dehydrogenase"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseCatalog() = %v, want %v", got, want)
	}
}

func Test_ParseCatalog_kogLayout(t *testing.T) {
	// same block layout, no underscore separators
	input := `[R] KOG0001 Ubiquitin and ubiquitin-like proteins
  hsa:  Hs4506713
[O] KOG0019 Molecular chaperone (HSP90 family)
  sce:  YPL240c
`
	got, err := ParseCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCatalog() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("ParseCatalog() mapped %d sequences, want 2", len(got))
	}
	if ann := got["YPL240c"]; ann.Org != "sce" || ann.COG != "KOG0019" {
		t.Errorf("YPL240c = %v, want org sce in KOG0019", ann)
	}
}

func Test_ParseCatalog_errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"membership before any header", "  Aful:  AF1241\n"},
		{"header without an ID", "[J]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCatalog(strings.NewReader(tt.input)); err == nil {
				t.Error("ParseCatalog() expected an error")
			}
		})
	}
}
