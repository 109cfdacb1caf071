package handlers

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/performance-dashboard/internal/api/dto"
	"github.com/spec-kit/performance-dashboard/internal/chart"
	"github.com/spec-kit/performance-dashboard/internal/service"
	apperrors "github.com/spec-kit/performance-dashboard/pkg/util"
)

// PageHandler renders the dashboard page with its filter control.
type PageHandler struct {
	service *service.DashboardService
	tmpl    *template.Template
}

type pageOption struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Title    string
	Options  []pageOption
	ChartURL string
	Rows     []dto.DepartmentResponse
}

// NewPageHandler constructs handler.
func NewPageHandler(dashboard *service.DashboardService) *PageHandler {
	funcs := template.FuncMap{
		"pct": chart.PercentLabel,
	}
	return &PageHandler{
		service: dashboard,
		tmpl:    template.Must(template.New("dashboard").Funcs(funcs).Parse(pageTemplate)),
	}
}

// Index GET /.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	selection := selectionFromQuery(c)

	options := make([]pageOption, 0)
	for _, name := range h.service.Options() {
		options = append(options, pageOption{
			Value:    name,
			Label:    strings.Join(strings.Fields(name), " "),
			Selected: selection.IsEmpty() || selection.Contains(name),
		})
	}

	chartURL := "/chart.png"
	if q := selectionQuery(selection); q != "" {
		chartURL += "?" + q
	}

	data := pageData{
		Title:    chart.Title,
		Options:  options,
		ChartURL: chartURL,
		Rows:     dto.DepartmentResponses(h.service.View(selection)),
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; color: #1a1a2e; display: flex; min-height: 100vh; }
aside { width: 300px; padding: 1rem; background: #f8f9fa; border-right: 1px solid #dee2e6; }
aside h2 { font-size: 1.1rem; margin-top: 0; }
aside label { display: block; font-size: .875rem; margin-bottom: .5rem; }
aside select { width: 100%; font-size: .8125rem; }
aside button { margin-top: .75rem; padding: .375rem .75rem; }
main { flex: 1; padding: 1rem 1.5rem; overflow-x: auto; }
main h1 { font-size: 1.5rem; margin-top: 0; }
.chart img { width: 100%; height: auto; border: 1px solid #dee2e6; }
.empty { color: #6c757d; }
table { border-collapse: collapse; font-size: .8125rem; margin-top: 1rem; width: 100%; }
th, td { padding: .375rem .625rem; border-bottom: 1px solid #dee2e6; text-align: right; }
th:first-child, td:first-child { text-align: left; white-space: pre-line; }
</style>
</head>
<body>
<aside>
  <h2>Dashboard Filters</h2>
  <form method="get" action="/">
    <label for="department">Select departments:</label>
    <select id="department" name="department" multiple size="20">
      {{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
      {{end}}
    </select>
    <button type="submit">Apply</button>
  </form>
</aside>
<main>
  <h1>{{.Title}}</h1>
  <section class="chart"><img src="{{.ChartURL}}" alt="{{.Title}}"></section>
  {{if .Rows}}
  <table>
    <thead><tr><th>Department</th><th>Enrolled</th><th>Failed</th><th>Passed</th><th>% Passed</th><th>% Failed</th></tr></thead>
    <tbody>
    {{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Enrolled}}</td><td>{{.Failed}}</td><td>{{.Passed}}</td><td>{{pct .PctPassed}}</td><td>{{pct .PctFailed}}</td></tr>
    {{end}}
    </tbody>
  </table>
  {{else}}
  <p class="empty">No departments match the current selection.</p>
  {{end}}
</main>
</body>
</html>
`
