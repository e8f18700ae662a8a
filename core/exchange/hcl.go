package exchange

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"qualitymap/core/quality"
)

var hclSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "entry", LabelNames: []string{"code"}},
	},
}

// hclEntry is the body of an entry block
type hclEntry struct {
	Quality     string `hcl:"quality,optional"`
	Description string `hcl:"description"`
}

// WriteHCL writes one entry block per code:
//
//	entry "ZC7" {
//	  quality     = "ERWARTET"
//	  description = "Referenz auf die Lokationsbündelstruktur"
//	}
func WriteHCL(w io.Writer, entries []quality.Entry) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, e := range entries {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("entry", []string{e.Code}).Body()
		if label := e.Quality.Label(); label != "" {
			block.SetAttributeValue("quality", cty.StringVal(label))
		}
		block.SetAttributeValue("description", cty.StringVal(e.Description))
	}

	_, err := w.Write(f.Bytes())
	return err
}

// ReadHCL reads entry blocks. Syntax errors and undecodable blocks are
// reported as malformed rows at the line of the diagnostic.
func ReadHCL(r io.Reader, source string) ([]quality.Entry, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	var c collector
	file, diags := hclparse.NewParser().ParseHCL(src, source)
	if diags.HasErrors() {
		collectDiagnostics(&c, "", 0, diags)
		return c.result(source)
	}

	content, diags := file.Body.Content(hclSchema)
	collectDiagnostics(&c, "", 0, diags)

	for _, block := range content.Blocks {
		code := block.Labels[0]
		line := block.DefRange.Start.Line

		var body hclEntry
		if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
			collectDiagnostics(&c, code, line, diags)
			continue
		}
		c.add(line, Record{Code: code, Quality: body.Quality, Description: body.Description})
	}
	return c.result(source)
}

func collectDiagnostics(c *collector, code string, line int, diags hcl.Diagnostics) {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		at := line
		if diag.Subject != nil {
			at = diag.Subject.Start.Line
		}
		c.malformed(at, code, diag.Summary+": "+diag.Detail)
	}
}
