package report

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"

	vfs "github.com/leovegas/reportgen/internal/assets"
)

const (
	TemplateMochawesome = "templates/report/mochawesome.html"
	TemplateSurefire    = "templates/report/surefire.html"
	TemplateChecks      = "templates/checks/summary.html"
)

// RenderTemplate executes an embedded HTML template with data. Text values
// are escaped by html/template.
func RenderTemplate(path string, data interface{}) ([]byte, error) {
	src, err := vfs.ReadTemplate(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read template %s", path)
	}

	tmpl, err := template.New(path).Delims("[[", "]]").Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse template %s", path)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "unable to render template %s", path)
	}
	return buf.Bytes(), nil
}
