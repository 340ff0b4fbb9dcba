package cli

import (
	"embed"
	"io"
	"math"
	"path"
	"strings"
	"text/template"

	"github.com/robertncl/expense/internal/util"
)

const (
	barWidth   = 20
	barPercent = 100
)

// Bar draws a horizontal bar proportional to percentage.
func Bar(percentage float64) string {
	if percentage <= 0 {
		return ""
	}

	width := int(math.Round(percentage * barWidth / barPercent))
	if width < 1 {
		width = 1
	}
	if width > barWidth {
		width = barWidth
	}

	return strings.Repeat("█", width) + strings.Repeat("░", barWidth-width)
}

func (s *Session) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":       s.Money,
		"colorOutput": util.ColorOutput,
		"hexOutput":   util.HexOutput,
		"bar":         Bar,
		"join":        strings.Join,
	}
}

// Render executes templates/<templateName> from content into out.
func (s *Session) Render(out io.Writer, content embed.FS, templateName string, value any) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}

	t, err := template.New(templateName).Funcs(s.templateFuncs()).Parse(string(tmpl))
	if err != nil {
		return err
	}

	return t.Execute(out, value)
}
