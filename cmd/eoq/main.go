package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/andresuchdata/eoq-calculator/internal/chart"
	"github.com/andresuchdata/eoq-calculator/internal/config"
	"github.com/andresuchdata/eoq-calculator/internal/domain"
	"github.com/andresuchdata/eoq-calculator/internal/export"
	"github.com/andresuchdata/eoq-calculator/internal/inventory"
	"github.com/andresuchdata/eoq-calculator/internal/service"
	"github.com/andresuchdata/eoq-calculator/pkg/logger"
	"github.com/urfave/cli/v2"
)

func newInputFlag(name, usage, envVar string) *cli.Float64Flag {
	return &cli.Float64Flag{
		Name:     name,
		Usage:    usage,
		Required: true,
		EnvVars:  []string{envVar},
	}
}

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("eoq failed")
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "eoq",
		Usage:     "EOQ and reorder point calculator for perishable goods",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "calc",
				Usage: "Calculate EOQ, ROP, stock-out time, order frequency and monthly cost",
				Flags: []cli.Flag{
					newInputFlag("daily-demand", "Daily demand (units per day)", "EOQ_DAILY_DEMAND"),
					newInputFlag("ordering-cost", "Ordering cost per order", "EOQ_ORDERING_COST"),
					newInputFlag("holding-cost", "Holding cost per unit per day", "EOQ_HOLDING_COST"),
					newInputFlag("lead-time", "Lead time (days)", "EOQ_LEAD_TIME"),
					newInputFlag("shelf-life", "Maximum shelf life (days)", "EOQ_SHELF_LIFE"),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the full report as JSON",
					},
					&cli.StringFlag{
						Name:  "svg",
						Usage: "Write the stock chart to this SVG file",
					},
					&cli.StringFlag{
						Name:  "xlsx",
						Usage: "Write the report to this XLSX file",
					},
				},
				Action: runCalc,
			},
		},
	}
}

func runCalc(c *cli.Context) error {
	in := inventory.Inputs{
		DailyDemand:  c.Float64("daily-demand"),
		OrderingCost: c.Float64("ordering-cost"),
		HoldingCost:  c.Float64("holding-cost"),
		LeadTime:     c.Float64("lead-time"),
		ShelfLife:    c.Float64("shelf-life"),
	}

	svc := service.NewEOQService(config.Load().App.Currency)
	report, err := svc.Calculate(context.Background(), in)
	if err != nil {
		return fmt.Errorf("failed to calculate: %w", err)
	}

	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		printReport(c.App.Writer, report)
	}

	if path := c.String("svg"); path != "" {
		svg, err := chart.RenderSeries(report.Chart.Series())
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, svg, 0o644); err != nil {
			return fmt.Errorf("failed writing %s: %w", path, err)
		}
	}

	if path := c.String("xlsx"); path != "" {
		if err := writeXLSX(path, report); err != nil {
			return err
		}
	}

	return nil
}

func writeXLSX(path string, report *domain.CalculationReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteReport(f, report); err != nil {
		return err
	}
	return f.Close()
}

func printReport(w io.Writer, report *domain.CalculationReport) {
	values := []string{
		report.Formatted.EOQ + " unit",
		report.Formatted.ROP + " unit",
		report.Formatted.StockOutTime + " hari",
		report.Formatted.OrderFrequency + " kali",
		report.CostText(),
	}

	fmt.Fprintln(w, "Hasil Perhitungan:")
	for i, field := range domain.MetricFields {
		fmt.Fprintf(w, "  %-34s %s\n", field.Label+":", values[i])
	}
	fmt.Fprintln(w, report.Message)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-5s %12s  %s\n", "Hari", "Level Stok", "Band")
	for i, day := range report.Chart.Days {
		fmt.Fprintf(w, "  %-5d %12s  %s\n", day, inventory.FormatFixed(report.Chart.Levels[i]), domain.BandLabel(report.Chart.Bands[i]))
	}
}
