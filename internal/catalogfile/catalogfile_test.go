package catalogfile

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleCatalog = `
category "ui-basics" {
  label       = "UI Basics"
  description = "Buttons and forms."
}

category "react-hooks" {}

page "a" {
  title      = "A"
  category   = "ui-basics"
  difficulty = "beginner"
  tags       = ["React", "Basics"]
}

page "b" {
  title      = "B"
  category   = "react-hooks"
  difficulty = "Advanced"
}

page "c" {
  title      = "C"
  category   = "ui-basics"
  difficulty = "intermediate"
}
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(sampleCatalog), "sample.hcl")
	require.NoError(t, err)

	cats := r.Categories()
	require.Len(t, cats, 2)
	require.Equal(t, "UI Basics", cats[0].Label)
	require.Equal(t, "React Hooks", cats[1].Label, "label falls back to the title-cased id")

	ids := []string{}
	for _, p := range r.PagesByCategory(catalog.CategoryUIBasics) {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"a", "c"}, ids)

	b, ok := r.PageByID("b")
	require.True(t, ok)
	require.Equal(t, catalog.DifficultyAdvanced, b.Difficulty)
	require.Empty(t, b.Tags)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "syntax error",
			src:     `category "layout" {`,
			wantErr: "failed to parse catalog file",
		},
		{
			name:    "missing required attribute",
			src:     `page "a" { category = "layout" }`,
			wantErr: "failed to decode catalog file",
		},
		{
			name: "category outside the enum",
			src: `
category "cooking" {}
page "a" {
  title = "A"
  category = "cooking"
  difficulty = "beginner"
}`,
			wantErr: `category "cooking" is not a known category id`,
		},
		{
			name: "dangling page and bad difficulty",
			src: `
category "layout" {}
page "a" {
  title = "A"
  category = "animation"
  difficulty = "expert"
}`,
			wantErr: `references unknown category "animation"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	r, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	_, err = Load(filepath.Join(dir, "missing.hcl"))
	require.ErrorContains(t, err, "failed to read catalog file")
}

func TestExport_HCLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, catalog.Default(), FormatHCL))

	r, err := Parse(buf.Bytes(), "export.hcl")
	require.NoError(t, err)

	if diff := cmp.Diff(catalog.Default().Pages(), r.Pages()); diff != "" {
		t.Errorf("pages mismatch after round trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(catalog.Default().Categories(), r.Categories()); diff != "" {
		t.Errorf("categories mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestExport_YAMLAndJSON(t *testing.T) {
	var y bytes.Buffer
	require.NoError(t, Export(&y, catalog.Default(), FormatYAML))

	var ydoc document
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &ydoc))
	require.Len(t, ydoc.Pages, 13)
	require.Equal(t, catalog.CategoryUIBasics, ydoc.Categories[0].ID)

	var j bytes.Buffer
	require.NoError(t, Export(&j, catalog.Default(), FormatJSON))

	var jdoc document
	require.NoError(t, json.Unmarshal(j.Bytes(), &jdoc))
	require.Equal(t, ydoc, jdoc)
}

func TestExport_UnknownFormat(t *testing.T) {
	require.False(t, Format("toml").IsValid())
	err := Export(&bytes.Buffer{}, catalog.Default(), "toml")
	require.ErrorContains(t, err, "unsupported export format")
}
