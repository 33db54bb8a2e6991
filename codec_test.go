package siteconf

import (
	"errors"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	custom := Default()
	custom.Lang = ""
	custom.Dir = DirAuto
	custom.EditPost.Enabled = false
	custom.Desc = `Quotes "and" colons: fine`

	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		for _, s := range []Settings{Default(), custom} {
			data, err := Marshal(s, f)
			if err != nil {
				t.Fatalf("%s: Marshal: %v", f, err)
			}
			got, err := Unmarshal(data, f)
			if err != nil {
				t.Fatalf("%s: Unmarshal: %v\n%s", f, err, data)
			}
			if got != s {
				t.Errorf("%s: round trip mismatch\n got: %+v\nwant: %+v", f, got, s)
			}
		}
	}
}

func TestMarshalUsesWireKeys(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		data, err := Marshal(Default(), f)
		if err != nil {
			t.Fatalf("%s: Marshal: %v", f, err)
		}
		out := string(data)
		for _, key := range []string{"ogImage", "scheduledPostMargin", "dynamicOgImage", "editPost"} {
			if !strings.Contains(out, key) {
				t.Errorf("%s output missing key %q:\n%s", f, key, out)
			}
		}
	}
}

func TestUnmarshalUnknownField(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatJSON, `{"title":"x","theme":"dark"}`},
		{FormatYAML, "title: x\ntheme: dark\n"},
		{FormatTOML, "title = \"x\"\ntheme = \"dark\"\n"},
	}
	for _, tt := range tests {
		_, err := Unmarshal([]byte(tt.data), tt.format)
		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("%s: err = %v, want ErrUnknownField", tt.format, err)
		}
	}
}

func TestUnmarshalMissingKeysStayZero(t *testing.T) {
	s, err := Unmarshal([]byte(`{"title":"Only Title"}`), FormatJSON)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Title != "Only Title" || s.Website != "" || s.PostPerPage != 0 {
		t.Errorf("unexpected record: %+v", s)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{".toml", FormatTOML},
		{"site.yml", FormatYAML},
		{"conf/site.json", FormatJSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrUnknownFormat", err)
	}
	if _, err := Marshal(Default(), Format("ini")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Marshal(ini) err = %v, want ErrUnknownFormat", err)
	}
}
