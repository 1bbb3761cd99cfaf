package report

import (
	"html/template"
	"strings"

	"github.com/openfund/fundview/pkg/models"
)

// tableClasses matches the site's Bootstrap styling.
const tableClasses = "table table-bordered table-striped"

// FinancialTableHTML renders a statement table as an HTML fragment. The
// first column holds row labels, subsequent columns one reporting period
// each, newest first. Absent cells render as "N/A".
func FinancialTableHTML(t models.FinancialTable) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<table class="` + tableClasses + `">`)

	sb.WriteString("<thead><tr><th></th>")
	for _, p := range t.Periods {
		sb.WriteString("<th>" + template.HTMLEscapeString(p) + "</th>")
	}
	sb.WriteString("</tr></thead>")

	sb.WriteString("<tbody>")
	for _, row := range t.Rows {
		sb.WriteString("<tr><th>" + template.HTMLEscapeString(row.Label) + "</th>")
		for _, v := range row.Values {
			sb.WriteString("<td>" + template.HTMLEscapeString(v.Display()) + "</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</tbody></table>")

	return template.HTML(sb.String())
}
