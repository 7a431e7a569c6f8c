package catalogfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Export.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatHCL:
		return true
	}
	return false
}

type document struct {
	Categories []catalog.Category `json:"categories" yaml:"categories"`
	Pages      []catalog.Page     `json:"pages" yaml:"pages"`
}

// Export writes the whole registry to w.
func Export(w io.Writer, registry *catalog.Registry, format Format) error {
	doc := document{
		Categories: registry.Categories(),
		Pages:      registry.Pages(),
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode catalog as yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode catalog as json: %w", err)
		}
		return nil
	case FormatHCL:
		_, err := w.Write(encodeHCL(doc))
		return err
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

func encodeHCL(doc document) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for _, c := range doc.Categories {
		body := root.AppendNewBlock("category", []string{string(c.ID)}).Body()
		body.SetAttributeValue("label", cty.StringVal(c.Label))
		body.SetAttributeValue("description", cty.StringVal(c.Description))
		root.AppendNewline()
	}

	for i, p := range doc.Pages {
		body := root.AppendNewBlock("page", []string{p.ID}).Body()
		body.SetAttributeValue("title", cty.StringVal(p.Title))
		body.SetAttributeValue("description", cty.StringVal(p.Description))
		body.SetAttributeValue("category", cty.StringVal(string(p.Category)))
		body.SetAttributeValue("difficulty", cty.StringVal(string(p.Difficulty)))
		if len(p.Tags) > 0 {
			tags := make([]cty.Value, 0, len(p.Tags))
			for _, t := range p.Tags {
				tags = append(tags, cty.StringVal(t))
			}
			body.SetAttributeValue("tags", cty.ListVal(tags))
		}
		if i < len(doc.Pages)-1 {
			root.AppendNewline()
		}
	}

	return f.Bytes()
}
