// Package render writes the aggregate table as a self-contained
// interactive choropleth HTML file. It holds no analysis logic.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/MMY1924/Project-DA601P-Sales-Strategy-Analysis/internal/model"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sales Method Dominance by State</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
</head>
<body>
<div id="choropleth"></div>
<script>
var fig = {{.Figure}};
Plotly.newPlot("choropleth", fig.data, fig.layout, {responsive: true});
</script>
</body>
</html>
`

type figure struct {
	Data   []trace `json:"data"`
	Layout layout  `json:"layout"`
}

type trace struct {
	Type          string          `json:"type"`
	Locations     []string        `json:"locations"`
	LocationMode  string          `json:"locationmode"`
	Z             []float64       `json:"z"`
	Colorscale    string          `json:"colorscale"`
	Reversescale  bool            `json:"reversescale"`
	Customdata    [][]interface{} `json:"customdata"`
	HoverTemplate string          `json:"hovertemplate"`
	Colorbar      colorbar        `json:"colorbar"`
}

type colorbar struct {
	Title string `json:"title"`
}

type layout struct {
	Title  title `json:"title"`
	Geo    geo   `json:"geo"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Font   font  `json:"font"`
}

type title struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
}

type geo struct {
	Scope string `json:"scope"`
}

type font struct {
	Size int `json:"size"`
}

// WriteChoropleth renders rows as a USA-states choropleth colored by
// dominance strength and writes it to path. Rows without a state code
// cannot be placed on the map and are left out of the trace; they are
// logged here so no state vanishes silently.
func WriteChoropleth(rows []model.StateDominance, methods []string, path string) error {
	if len(methods) == 0 {
		methods = model.CanonicalMethods()
	}

	tr := trace{
		Type:          "choropleth",
		LocationMode:  "USA-states",
		Colorscale:    "RdYlBu",
		Reversescale:  true,
		HoverTemplate: hoverTemplate(methods),
		Colorbar:      colorbar{Title: "Dominance %"},
	}

	for _, row := range rows {
		if row.Code == "" {
			zap.L().Warn("render: state has no code, omitted from map",
				zap.String("state", row.State),
				zap.String("dominant_method", row.DominantMethod),
			)
			continue
		}

		custom := make([]interface{}, 0, len(methods)+2)
		custom = append(custom, row.State, row.DominantMethod)
		for _, m := range methods {
			custom = append(custom, row.Shares[m])
		}

		tr.Locations = append(tr.Locations, row.Code)
		tr.Z = append(tr.Z, row.Strength)
		tr.Customdata = append(tr.Customdata, custom)
	}

	fig := figure{
		Data: []trace{tr},
		Layout: layout{
			Title:  title{Text: "Sales Method Dominance by State", X: 0.5},
			Geo:    geo{Scope: "usa"},
			Width:  1200,
			Height: 700,
			Font:   font{Size: 14},
		},
	}

	figJSON, err := json.Marshal(fig)
	if err != nil {
		return eris.Wrap(err, "render: marshal figure")
	}

	tmpl, err := template.New("choropleth").Parse(pageTemplate)
	if err != nil {
		return eris.Wrap(err, "render: parse template")
	}

	// Render fully in memory so a failure never leaves a partial file.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}{
		"Figure": template.JS(figJSON),
	}); err != nil {
		return eris.Wrap(err, "render: execute template")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrap(err, "render: write artifact")
	}

	return nil
}

// hoverTemplate builds the Plotly hover layout: state name, dominant
// method, then one share line per method in canonical order.
func hoverTemplate(methods []string) string {
	var b strings.Builder
	b.WriteString("<b>%{customdata[0]}</b><br>Dominant: %{customdata[1]}")
	for i, m := range methods {
		fmt.Fprintf(&b, "<br>%s: %%{customdata[%d]:.1f}%%", m, i+2)
	}
	b.WriteString("<extra></extra>")
	return b.String()
}
