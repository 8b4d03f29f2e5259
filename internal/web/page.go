package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"

	"github.com/andresuchdata/eoq-calculator/internal/chart"
	"github.com/andresuchdata/eoq-calculator/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const footer = "Dibuat oleh Mahasiswa Teknik Informatika untuk UMKM"

// FieldValue is a form field with the value last submitted for it.
type FieldValue struct {
	domain.Field
	Value string
}

// MetricRow is one formatted line of the result list.
type MetricRow struct {
	Label string
	Value string
}

// PageData contains all data for rendering the calculator page.
type PageData struct {
	Title     string
	Footer    string
	Fields    []FieldValue
	Error     string
	Report    *domain.CalculationReport
	Metrics   []MetricRow
	Chart     template.HTML
	ExportURL string
}

// Renderer renders the calculator page.
type Renderer struct {
	title string
	tmpl  *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer(title string) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &Renderer{title: title, tmpl: tmpl}, nil
}

// NewPage prepares page data for the given raw form values. Missing values
// are left empty.
func (r *Renderer) NewPage(values url.Values) *PageData {
	page := &PageData{
		Title:  r.title,
		Footer: footer,
	}
	for _, f := range domain.InputFields {
		page.Fields = append(page.Fields, FieldValue{Field: f, Value: values.Get(f.Name)})
	}
	return page
}

// WithReport fills the result section, the inline chart and the export link.
func (p *PageData) WithReport(report *domain.CalculationReport) error {
	svg, err := chart.RenderSeries(report.Chart.Series())
	if err != nil {
		return err
	}

	p.Report = report
	p.Chart = template.HTML(svg)
	p.Metrics = []MetricRow{
		{Label: domain.MetricFields[0].Label, Value: report.Formatted.EOQ + " unit"},
		{Label: domain.MetricFields[1].Label, Value: report.Formatted.ROP + " unit"},
		{Label: domain.MetricFields[2].Label, Value: report.Formatted.StockOutTime + " hari"},
		{Label: domain.MetricFields[3].Label, Value: report.Formatted.OrderFrequency + " kali"},
		{Label: domain.MetricFields[4].Label, Value: report.CostText()},
	}
	p.ExportURL = "/api/v1/eoq/export.xlsx?" + QueryValues(report.Inputs).Encode()
	return nil
}

// Render executes the page template.
func (r *Renderer) Render(w io.Writer, page *PageData) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// QueryValues encodes calculator inputs as query parameters.
func QueryValues(req domain.CalculationRequest) url.Values {
	values := url.Values{}
	for i, f := range domain.InputFields {
		values.Set(f.Name, strconv.FormatFloat(req.Values()[i], 'f', -1, 64))
	}
	return values
}
