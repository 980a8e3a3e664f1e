package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/leapstack-labs/launchdash/internal/analytics"
	"github.com/leapstack-labs/launchdash/internal/chart"
	"github.com/leapstack-labs/launchdash/internal/cli/output"
	"github.com/leapstack-labs/launchdash/internal/dashboard"
	"github.com/leapstack-labs/launchdash/internal/dataset"
)

// SummaryOptions holds options for the summary command.
type SummaryOptions struct {
	Site string
	Low  float64
	High float64
}

// SummaryOutput is the JSON form of the summary command.
type SummaryOutput struct {
	Source    string              `json:"source"`
	Records   int                 `json:"records"`
	Selection dashboard.Selection `json:"selection"`
	Pie       chart.Figure        `json:"pie"`
	Scatter   chart.Figure        `json:"scatter"`
	Boosters  []BoosterSummary    `json:"boosters"`
}

// BoosterSummary aggregates the scatter points of one booster category.
type BoosterSummary struct {
	Category   string  `json:"category"`
	Launches   int     `json:"launches"`
	Successes  int     `json:"successes"`
	MinPayload float64 `json:"min_payload_kg"`
	MaxPayload float64 `json:"max_payload_kg"`
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	opts := &SummaryOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard charts as tables",
		Long: `Compute the success pie chart and the payload scatter chart for a launch
site and payload range, and print them without starting a server.

The payload range is half-open: records with low <= payload < high are kept.
Omitted bounds default to the dataset's smallest and largest payload.

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json`,
		Example: `  # Successes per site over the whole dataset
  launchdash summary

  # Success vs failure at one site, payloads from 2000 kg up to 6000 kg
  launchdash summary --site "KSC LC-39A" --low 2000 --high 6000

  # Machine-readable figures
  launchdash summary -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Site, "site", analytics.AllSites, "Launch site, or ALL")
	cmd.Flags().Float64Var(&opts.Low, "low", 0, "Inclusive lower payload bound in kg (default: dataset minimum)")
	cmd.Flags().Float64Var(&opts.High, "high", 0, "Exclusive upper payload bound in kg (default: dataset maximum)")

	return cmd
}

func runSummary(cmd *cobra.Command, opts *SummaryOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	ds, err := cmdCtx.LoadDataset(cmd.Context())
	if err != nil {
		return err
	}
	shell := dashboard.New(ds, cmdCtx.Cfg.Dashboard.Shell())

	sel := shell.DefaultSelection()
	if opts.Site != "" {
		sel.Site = opts.Site
	}
	if cmd.Flags().Changed("low") {
		sel.Payload.Low = opts.Low
	}
	if cmd.Flags().Changed("high") {
		sel.Payload.High = opts.High
	}

	out, err := buildSummary(shell, ds, sel)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		summaryMarkdown(r, out)
	default:
		summaryText(r, out)
	}
	return nil
}

func buildSummary(shell *dashboard.Shell, ds *dataset.Dataset, sel dashboard.Selection) (SummaryOutput, error) {
	pie, err := shell.Compute(dashboard.PieChartID, sel)
	if err != nil {
		return SummaryOutput{}, err
	}
	scatter, err := shell.Compute(dashboard.ScatterChartID, sel)
	if err != nil {
		return SummaryOutput{}, err
	}

	return SummaryOutput{
		Source:    ds.Source(),
		Records:   ds.Len(),
		Selection: sel,
		Pie:       pie,
		Scatter:   scatter,
		Boosters:  boosterSummaries(scatter),
	}, nil
}

func boosterSummaries(fig chart.Figure) []BoosterSummary {
	out := make([]BoosterSummary, 0, len(fig.Series))
	for _, s := range fig.Series {
		if len(s.Points) == 0 {
			continue
		}
		b := BoosterSummary{
			Category:   s.Name,
			MinPayload: s.Points[0].X,
			MaxPayload: s.Points[0].X,
		}
		for _, p := range s.Points {
			b.Launches++
			if p.Y == dataset.ClassSuccess {
				b.Successes++
			}
			b.MinPayload = min(b.MinPayload, p.X)
			b.MaxPayload = max(b.MaxPayload, p.X)
		}
		out = append(out, b)
	}
	return out
}

func pieTable(fig chart.Figure, format func(float64) string) ([]string, [][]any) {
	header := []string{fig.Bindings.Names, fig.Bindings.Values}
	rows := make([][]any, 0, len(fig.Slices))
	for _, s := range fig.Slices {
		rows = append(rows, []any{s.Label, format(s.Value)})
	}
	return header, rows
}

func boosterTable(boosters []BoosterSummary, format func(float64) string) ([]string, [][]any) {
	header := []string{dataset.ColumnBoosterCategory, "Launches", "Successes", "Min payload (kg)", "Max payload (kg)"}
	rows := make([][]any, 0, len(boosters))
	for _, b := range boosters {
		rows = append(rows, []any{b.Category, b.Launches, b.Successes, format(b.MinPayload), format(b.MaxPayload)})
	}
	return header, rows
}

func summaryText(r *output.Renderer, out SummaryOutput) {
	styles := r.Styles()
	p := message.NewPrinter(language.English)
	format := func(v float64) string { return p.Sprint(v) }

	r.Header(1, "Launch records")
	r.Printf("%s %s\n", styles.Bold.Render("Source:"), out.Source)
	r.Printf("%s %d\n", styles.Bold.Render("Records:"), out.Records)
	r.Printf("%s %s\n", styles.Bold.Render("Payload:"),
		p.Sprintf("[%v, %v) kg", out.Selection.Payload.Low, out.Selection.Payload.High))
	r.Println("")

	r.Header(2, out.Pie.Title)
	if len(out.Pie.Slices) == 0 {
		r.Println(styles.Muted.Render("No launches"))
	} else {
		r.Table(pieTable(out.Pie, format))
	}
	r.Println("")

	r.Header(2, out.Scatter.Title)
	if len(out.Boosters) == 0 {
		r.Println(styles.Muted.Render("No launches in range"))
		return
	}
	r.Table(boosterTable(out.Boosters, format))
}

func summaryMarkdown(r *output.Renderer, out SummaryOutput) {
	r.Println(output.FormatHeader(1, "Launch records"))
	r.Println("")
	r.Println(output.FormatKeyValue("Source", out.Source))
	r.Println(output.FormatKeyValue("Records", strconv.Itoa(out.Records)))
	r.Println(output.FormatKeyValue("Site", out.Selection.Site))
	r.Println(output.FormatKeyValue("Payload", out.Selection.Payload.String()))
	r.Println("")

	r.Println(output.FormatHeader(2, out.Pie.Title))
	r.Println("")
	if len(out.Pie.Slices) == 0 {
		r.Println("No launches.")
	} else {
		r.Table(pieTable(out.Pie, formatFloat))
	}
	r.Println("")

	r.Println(output.FormatHeader(2, out.Scatter.Title))
	r.Println("")
	if len(out.Boosters) == 0 {
		r.Println("No launches in range.")
		return
	}
	r.Table(boosterTable(out.Boosters, formatFloat))
	r.Println("")
	r.Println(fmt.Sprintf("%d launches plotted.", out.Scatter.PointCount()))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
