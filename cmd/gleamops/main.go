// GleamOps CLI - Commercial Cleaning Bid Intelligence
//
// Usage:
//   gleamops bid calculate --snapshot bid.json [options]
//   gleamops supply price --order order.json
//   gleamops express --building-type OFFICE --sqft 20000
//   gleamops contract --monthly-price 2500 --months 36
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/Anderson413366/gleamops-sub002/decision/bid"
	"github.com/Anderson413366/gleamops-sub002/decision/expressload"
	"github.com/Anderson413366/gleamops-sub002/decision/pricing"
	"github.com/Anderson413366/gleamops-sub002/decision/supply"
	"github.com/Anderson413366/gleamops-sub002/pkg/api"
	"github.com/Anderson413366/gleamops-sub002/pkg/platform"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:    "gleamops",
		Usage:   "Commercial Cleaning Bid Intelligence - Workload, Pricing, and Supply Quoting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"GLEAMOPS_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			platform.InitLogger(c.String("log-level"))
			return nil
		},

		Commands: []*cli.Command{
			bidCommand(),
			supplyCommand(),
			expressCommand(),
			contractCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// BID COMMAND
// =============================================================================

func bidCommand() *cli.Command {
	return &cli.Command{
		Name:  "bid",
		Usage: "Calculate bids from snapshots",
		Subcommands: []*cli.Command{
			{
				Name:  "calculate",
				Usage: "Calculate workload and pricing for a bid snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "snapshot",
						Aliases:  []string{"s"},
						Usage:    "Path to bid snapshot JSON",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "table",
						Usage:   "Output format (table, json)",
					},
				},
				Action: runBidCalculate,
			},
		},
	}
}

// QuoteEnvelope wraps a calculation result with an identity for downstream
// systems. The identity is generated per run; the result inside is a pure
// function of the snapshot.
type QuoteEnvelope struct {
	QuoteID     string      `json:"quote_id"`
	GeneratedAt string      `json:"generated_at"`
	Result      interface{} `json:"result"`
}

func newEnvelope(result interface{}) QuoteEnvelope {
	return QuoteEnvelope{
		QuoteID:     uuid.New().String(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Result:      result,
	}
}

func runBidCalculate(c *cli.Context) error {
	var snapshot api.BidSnapshot
	if err := readJSONFile(c.String("snapshot"), &snapshot); err != nil {
		return fmt.Errorf("failed to read bid snapshot: %w", err)
	}

	result, err := bid.Calculate(&snapshot)
	if err != nil {
		return fmt.Errorf("bid calculation failed: %w", err)
	}
	slog.Debug("bid calculated",
		"bid_version_id", snapshot.BidVersionID,
		"monthly_hours", result.Workload.MonthlyHours,
		"recommended_price", result.Pricing.RecommendedPrice,
		"warnings", len(result.Workload.Warnings))

	if c.String("format") == "json" {
		return outputJSON(newEnvelope(result))
	}
	return outputBidTable(result)
}

func outputBidTable(result *api.BidResult) error {
	wl := result.Workload
	pr := result.Pricing

	fmt.Println()
	fmt.Println("==================== BID CALCULATION ====================")
	fmt.Printf("  Monthly Hours:        %.2f\n", wl.MonthlyHours)
	fmt.Printf("  Hours Per Visit:      %.2f\n", wl.HoursPerVisit)
	fmt.Printf("  Cleaners Needed:      %d\n", wl.CleanersNeeded)
	fmt.Printf("  Lead Required:        %t\n", wl.LeadNeeded)
	fmt.Println("---------------------------------------------------------")
	fmt.Printf("  Total Monthly Cost:   $%.2f\n", pr.TotalMonthlyCost)
	fmt.Printf("  Recommended Price:    $%.2f\n", pr.RecommendedPrice)
	fmt.Printf("  Margin:               %.1f%%\n", pr.EffectiveMarginPct)
	if pr.Explanation.PricePerSqft != nil {
		fmt.Printf("  Price Per Sqft:       $%.4f\n", *pr.Explanation.PricePerSqft)
	}
	fmt.Println("=========================================================")

	for _, w := range wl.Warnings {
		fmt.Printf("  ! %s\n", w)
	}
	return nil
}

// =============================================================================
// SUPPLY COMMAND
// =============================================================================

func supplyCommand() *cli.Command {
	return &cli.Command{
		Name:  "supply",
		Usage: "Price supply orders",
		Subcommands: []*cli.Command{
			{
				Name:  "price",
				Usage: "Price a supply order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "order",
						Aliases:  []string{"o"},
						Usage:    "Path to supply order JSON",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "table",
						Usage:   "Output format (table, json)",
					},
				},
				Action: runSupplyPrice,
			},
			{
				Name:  "anchors",
				Usage: "List the pre-loaded anchor SKUs",
				Action: func(c *cli.Context) error {
					return outputJSON(supply.AnchorSKUs)
				},
			},
		},
	}
}

func runSupplyPrice(c *cli.Context) error {
	var input api.SupplyPricingInput
	if err := readJSONFile(c.String("order"), &input); err != nil {
		return fmt.Errorf("failed to read supply order: %w", err)
	}

	result := supply.Calculate(&input)
	slog.Debug("supply order priced",
		"items", len(result.Items),
		"grand_total", result.GrandTotal,
		"margin_health", result.MarginHealth)

	if c.String("format") == "json" {
		return outputJSON(newEnvelope(result))
	}
	return outputSupplyTable(result)
}

func outputSupplyTable(result *api.SupplyPricingResult) error {
	fmt.Println()
	fmt.Println("==================== SUPPLY PRICING =====================")
	for _, item := range result.Items {
		fmt.Printf("  %-12s %-32s $%8.2f  %s\n",
			item.Code, truncate(item.Name, 32), item.DiscountedLineTotal, item.MarginHealth)
	}
	fmt.Println("---------------------------------------------------------")
	fmt.Printf("  Total Cost:           $%.2f\n", result.TotalCost)
	fmt.Printf("  Total Revenue:        $%.2f\n", result.TotalRevenue)
	fmt.Printf("  Blended Margin:       %.1f%%\n", result.BlendedMarginPct)
	fmt.Printf("  Management Fee:       $%.2f\n", result.TotalManagementFee)
	fmt.Printf("  Grand Total:          $%.2f\n", result.GrandTotal)
	fmt.Printf("  Delivery Fee:         $%.2f\n", result.DeliveryFee)
	fmt.Println("=========================================================")

	for _, w := range result.Warnings {
		fmt.Printf("  ! %s\n", w)
	}
	return nil
}

// =============================================================================
// EXPRESS COMMAND
// =============================================================================

func expressCommand() *cli.Command {
	return &cli.Command{
		Name:  "express",
		Usage: "Generate a default area layout from building type and square footage",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "building-type",
				Aliases:  []string{"b"},
				Usage:    "Building type code (OFFICE, RETAIL, MEDICAL_HEALTHCARE, ...)",
				Required: true,
			},
			&cli.Float64Flag{
				Name:     "sqft",
				Usage:    "Total square footage",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "occupancy",
				Usage: "Building occupancy, used to size restroom fixtures",
			},
		},
		Action: func(c *cli.Context) error {
			areas := expressload.Generate(expressload.Input{
				BuildingTypeCode: c.String("building-type"),
				TotalSqft:        c.Float64("sqft"),
				Occupancy:        c.Int("occupancy"),
			})
			return outputJSON(areas)
		},
	}
}

// =============================================================================
// CONTRACT COMMAND
// =============================================================================

func contractCommand() *cli.Command {
	return &cli.Command{
		Name:  "contract",
		Usage: "Project a monthly price over a contract term with escalation",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:     "monthly-price",
				Usage:    "Starting monthly price",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "months",
				Value: pricing.DefaultContractMonths,
				Usage: "Contract length in months",
			},
			&cli.Float64Flag{
				Name:  "escalation",
				Value: pricing.DefaultAnnualEscalationPct,
				Usage: "Annual escalation percentage",
			},
		},
		Action: func(c *cli.Context) error {
			projection := pricing.ProjectContract(c.Float64("monthly-price"), pricing.ContractTerms{
				LengthMonths:        c.Int("months"),
				AnnualEscalationPct: c.Float64("escalation"),
			})
			return outputJSON(projection)
		},
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
