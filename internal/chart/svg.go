package chart

import (
	"fmt"
	"html"
	"io"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Size is the pixel size of a rendered chart.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a zero Size is passed to RenderSVG.
var DefaultSize = Size{Width: 640, Height: 420}

// palette follows the plotly qualitative palette so categories keep the
// colors users know from the original dashboard.
var palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("ef553b"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
	drawing.ColorFromHex("ff6692"),
	drawing.ColorFromHex("b6e880"),
	drawing.ColorFromHex("ff97ff"),
	drawing.ColorFromHex("fecb52"),
}

func paletteColor(i int) drawing.Color {
	return palette[i%len(palette)]
}

// RenderSVG writes fig as an SVG document. Figures with nothing to draw
// produce a blank frame with the title instead of an error.
func RenderSVG(w io.Writer, fig Figure, size Size) error {
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultSize
	}
	if fig.Empty() {
		return renderBlank(w, fig, size)
	}

	switch fig.Kind {
	case KindPie:
		return renderPie(w, fig, size)
	case KindScatter:
		return renderScatter(w, fig, size)
	default:
		return fmt.Errorf("unsupported figure kind %q", fig.Kind)
	}
}

func renderPie(w io.Writer, fig Figure, size Size) error {
	values := make([]gochart.Value, 0, len(fig.Slices))
	for i, s := range fig.Slices {
		// Zero wedges have no area; go-chart drops them anyway.
		if s.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: escapeText(fmt.Sprintf("%s (%s)", s.Label, formatNumber(s.Value))),
			Value: s.Value,
			Style: gochart.Style{
				FillColor:   paletteColor(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontColor:   drawing.ColorFromHex("2a3f5f"),
			},
		})
	}

	pie := gochart.PieChart{
		Title:  escapeText(fig.Title),
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		Values: values,
	}
	if err := pie.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	return nil
}

func renderScatter(w io.Writer, fig Figure, size Size) error {
	xr := Range{Min: 0, Max: 1}
	if fig.XRange != nil {
		xr = *fig.XRange
	}
	yr := Range{Min: -0.25, Max: 1.25}
	if fig.YRange != nil {
		yr = *fig.YRange
	}

	ch := gochart.Chart{
		Title:  escapeText(fig.Title),
		Width:  size.Width,
		Height: size.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Name:  escapeText(fig.Bindings.X),
			Range: &gochart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: gochart.YAxis{
			Name:  escapeText(fig.Bindings.Y),
			Range: &gochart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			Ticks: []gochart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
	}

	for i, s := range fig.Series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.X
			ys[j] = p.Y
		}
		color := paletteColor(i)
		ch.Series = append(ch.Series, gochart.ContinuousSeries{
			Name:    escapeText(s.Name),
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				StrokeColor: color,
				DotWidth:    5,
				DotColor:    color,
			},
		})
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("failed to render scatter chart: %w", err)
	}
	return nil
}

const blankTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[2]d" viewBox="0 0 %[1]d %[2]d" data-empty="true">` +
	`<rect x="0.5" y="0.5" width="%[3]d" height="%[4]d" fill="#ffffff" stroke="#e5ecf6"/>` +
	`<text x="%[5]d" y="32" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#2a3f5f">%[6]s</text>` +
	`<text x="%[5]d" y="%[7]d" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#8c9bb0">No data</text>` +
	`</svg>`

func renderBlank(w io.Writer, fig Figure, size Size) error {
	_, err := fmt.Fprintf(w, blankTemplate,
		size.Width, size.Height,
		size.Width-1, size.Height-1,
		size.Width/2,
		escapeText(fig.Title),
		size.Height/2,
	)
	return err
}

// escapeText prepares a label for go-chart, which writes text content into
// the SVG verbatim.
func escapeText(s string) string {
	return html.EscapeString(s)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
