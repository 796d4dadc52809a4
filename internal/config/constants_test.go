package config

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := Default()
	if opts.Revision != DefaultRevision {
		t.Errorf("Revision = %q, want %q", opts.Revision, DefaultRevision)
	}
	if opts.CaseSensitive {
		t.Error("CaseSensitive should default to false")
	}
}

func TestParseFillsInDefaultRevision(t *testing.T) {
	opts, err := Parse([]byte(`case_sensitive: true`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Revision != DefaultRevision {
		t.Errorf("Revision = %q, want %q (document omitted it)", opts.Revision, DefaultRevision)
	}
	if !opts.CaseSensitive {
		t.Error("CaseSensitive should have been read from the document")
	}
}

func TestParseHonorsExplicitRevisionAndLibraryRoots(t *testing.T) {
	doc := []byte(`
revision: "2019"
library_roots:
  work: ./work
  ieee: ./ieee
`)
	opts, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Revision != Revision2019 {
		t.Errorf("Revision = %q, want %q", opts.Revision, Revision2019)
	}
	if got := opts.LibraryRoots["ieee"]; got != "./ieee" {
		t.Errorf("library_roots[ieee] = %q, want %q", got, "./ieee")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("revision: [unterminated")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestFoldDesignator(t *testing.T) {
	cases := []struct {
		name          string
		caseSensitive bool
		in            string
		want          string
	}{
		{"insensitive lowercases", false, "MyDesignator", "mydesignator"},
		{"sensitive keeps case", true, "MyDesignator", "MyDesignator"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := Options{CaseSensitive: c.caseSensitive}
			if got := o.FoldDesignator(c.in); got != c.want {
				t.Errorf("FoldDesignator(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
