// riskcore — quantitative risk and suitability engine for client portfolios.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seenimoa/riskcore/api"
	"github.com/seenimoa/riskcore/internal/advisor"
	"github.com/seenimoa/riskcore/internal/config"
	"github.com/seenimoa/riskcore/internal/report"
	"github.com/seenimoa/riskcore/internal/suitability"
	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riskcore",
	Short: "riskcore — quantitative risk & suitability engine",
	Long: `riskcore
A quantitative risk assessment and suitability engine for client
portfolios: per-instrument risk scoring, VaR and stress testing,
correlation and diversification analysis, and tier-based suitability
verdicts with compliance reviews.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(suitabilityCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(instrumentsCmd)
	rootCmd.AddCommand(statusCmd)
}

// profileForTier builds a client profile from the --tier flag, falling
// back to the configured default tier, then to the moderate default.
func profileForTier(tier string) models.ClientProfile {
	profile := models.DefaultClientProfile()
	if tier == "" && cfg != nil {
		tier = cfg.Engine.DefaultTier
	}
	if tier != "" {
		profile.RiskTolerance = models.RiskToleranceTier(tier)
	}
	return profile
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("riskcore %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("🌐 Starting riskcore API server on %s\n", addr)
		fmt.Printf("   Dashboard:  http://localhost:%d/\n", cfg.API.Port)
		fmt.Printf("   API:        http://localhost:%d/api/v1\n", cfg.API.Port)

		srv := api.NewServer(cfg)
		return srv.ListenAndServe(addr)
	},
}

// --- Assess Command ---

var assessCmd = &cobra.Command{
	Use:   "assess [ticker]",
	Short: "Run a full risk and suitability assessment for one instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := utils.NormalizeTicker(args[0])
		tier, _ := cmd.Flags().GetString("tier")
		rationale, _ := cmd.Flags().GetBool("rationale")
		acknowledged, _ := cmd.Flags().GetBool("acknowledged")
		asJSON, _ := cmd.Flags().GetBool("json")

		fmt.Printf("🔍 Assessing %s (tolerance: %s)\n", ticker, profileForTier(tier).RiskTolerance)
		fmt.Printf("   Market Status: %s\n\n", utils.MarketStatus())

		svc := advisor.NewService(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		review, err := svc.AssessInstrumentWithDocs(ctx, ticker, profileForTier(tier), suitability.DocumentationInput{
			HasRationale:      rationale,
			HasAcknowledgment: acknowledged,
		})
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(review)
		}

		text, err := report.GenerateInstrumentText(review, report.DefaultReportConfig())
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	assessCmd.Flags().String("tier", "", "risk tolerance tier (conservative, moderate, aggressive)")
	assessCmd.Flags().Bool("rationale", false, "investment rationale is documented")
	assessCmd.Flags().Bool("acknowledged", false, "client risk acknowledgment is on file")
	assessCmd.Flags().Bool("json", false, "print the raw review as JSON")
}

// --- Portfolio Command ---

var portfolioCmd = &cobra.Command{
	Use:   "portfolio [holdings.json]",
	Short: "Analyze a portfolio from a holdings file",
	Long: `Analyze a portfolio described by a JSON holdings file:

  [
    {"instrument": {"ticker": "AAPL", "sector": "Technology", "beta": 1.2}, "value": 40000},
    {"instrument": {"ticker": "JNJ",  "sector": "Healthcare", "beta": 0.55}, "value": 30000}
  ]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, _ := cmd.Flags().GetString("tier")
		asJSON, _ := cmd.Flags().GetBool("json")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read holdings file: %w", err)
		}
		var holdings []models.Holding
		if err := json.Unmarshal(data, &holdings); err != nil {
			return fmt.Errorf("failed to parse holdings file: %w", err)
		}

		fmt.Printf("📊 Analyzing portfolio: %d positions (tolerance: %s)\n\n",
			len(holdings), profileForTier(tier).RiskTolerance)

		svc := advisor.NewService(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		review, err := svc.AnalyzePortfolio(ctx, holdings, profileForTier(tier))
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(review)
		}

		text, err := report.GeneratePortfolioText(review, report.DefaultReportConfig())
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	portfolioCmd.Flags().String("tier", "", "risk tolerance tier (conservative, moderate, aggressive)")
	portfolioCmd.Flags().Bool("json", false, "print the raw review as JSON")
}

// --- Stress Command ---

var stressCmd = &cobra.Command{
	Use:   "stress [ticker]",
	Short: "Run VaR and stress scenario analysis for one instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := utils.NormalizeTicker(args[0])

		svc := advisor.NewService(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		result, err := svc.StressTest(ctx, ticker)
		if err != nil {
			return err
		}

		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Stress Analysis — %s\n", result.Ticker)
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Current Price:   %s\n", utils.FormatUSD(result.StressTests.CurrentPrice))
		fmt.Printf("  VaR 95%% 1-day:   %s (%s)\n",
			utils.FormatUSD(result.VaR.VaR951Day), utils.FormatPct(result.VaR.VaR951DayPercent))
		fmt.Printf("  VaR 95%% 10-day:  %s\n", utils.FormatUSD(result.VaR.VaR9510Day))
		fmt.Printf("  Methodology:     %s\n", result.VaR.Methodology)
		fmt.Println()
		fmt.Println("  Scenarios:")
		for _, sc := range result.StressTests.Scenarios {
			fmt.Printf("    %-28s %+.1f%%  →  %s (loss %s/share, %s)\n",
				sc.Description, sc.StockImpact,
				utils.FormatUSD(sc.ProjectedPrice), utils.FormatUSD(sc.DollarLoss), sc.Probability)
		}
		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

// --- Suitability Command ---

var suitabilityCmd = &cobra.Command{
	Use:   "suitability [ticker]",
	Short: "Check suitability of an instrument for a client tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ticker := utils.NormalizeTicker(args[0])
		tier, _ := cmd.Flags().GetString("tier")
		profile := profileForTier(tier)

		svc := advisor.NewService(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		review, err := svc.AssessInstrument(ctx, ticker, profile)
		if err != nil {
			return err
		}

		verdict := "✅ SUITABLE"
		if !review.Suitability.Suitable {
			verdict = "❌ NOT SUITABLE"
		}

		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Suitability — %s for %s clients\n", review.Instrument.Ticker, profile.RiskTolerance)
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Risk Score: %d/10 (%s)\n", review.Assessment.RiskScore, review.Assessment.RiskLevel)
		fmt.Printf("  Verdict:    %s\n", verdict)
		fmt.Printf("  Reasoning:  %s\n", review.Suitability.Reasoning)
		if len(review.Suitability.Checks) > 0 {
			fmt.Println()
			for _, c := range review.Suitability.Checks {
				mark := "✅"
				if !c.Passed {
					mark = "❌"
				}
				fmt.Printf("  %s %-24s %s\n", mark, c.Name, c.Notes)
			}
		}
		for _, warn := range review.Suitability.Warnings {
			fmt.Printf("  ⚠️  %s\n", warn)
		}
		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

func init() {
	suitabilityCmd.Flags().String("tier", "", "risk tolerance tier (conservative, moderate, aggressive)")
}

// --- Tiers Command ---

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the risk tolerance tier policies",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Println("  Risk Tolerance Tier Policies")
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Printf("  %-14s %-10s %-12s %-10s %-8s\n", "Tier", "MaxScore", "MaxBeta", "Single", "Sector")
		for _, p := range suitability.Policies() {
			fmt.Printf("  %-14s %-10d %-12.1f %-10s %-8s\n",
				p.Tier, p.MaxRiskScore, p.MaxVolatility,
				utils.FormatPct(p.MaxSingleSecurityShare*100),
				utils.FormatPct(p.MaxSectorShare*100))
		}
		fmt.Println("═══════════════════════════════════════════════════════════════")
	},
}

// --- Instruments Command ---

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List the instrument catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		svc := advisor.NewService(cfg)
		catalog := svc.Catalog()

		var instruments []models.Instrument
		if search != "" {
			instruments = catalog.Search(search)
		} else {
			instruments = catalog.List()
		}

		fmt.Printf("  %-8s %-28s %-24s %-8s %s\n", "Ticker", "Name", "Sector", "Beta", "Price")
		for _, inst := range instruments {
			fmt.Printf("  %-8s %-28s %-24s %-8.2f %s\n",
				inst.Ticker, inst.Name, inst.Sector, inst.Beta, utils.FormatUSD(inst.LastPrice))
		}
		fmt.Printf("\n  %d instruments\n", len(instruments))
		return nil
	},
}

func init() {
	instrumentsCmd.Flags().String("search", "", "filter by ticker or name substring")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  riskcore — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:       %s (%s)\n", version, commit)
		fmt.Printf("  Market Status: %s\n", utils.MarketStatus())
		fmt.Printf("  Time (ET):     %s\n", utils.FormatDateTimeEastern(utils.NowEastern()))
		fmt.Println()

		// Config summary
		fmt.Println("  Configuration:")
		fmt.Printf("    Default Tier:  %s\n", cfg.Engine.DefaultTier)
		fmt.Printf("    Concurrency:   %d fetches\n", cfg.Engine.ConcurrentFetches)
		fmt.Printf("    API Server:    %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Printf("    Data Source:   %s\n", cfg.Data.ScrapeBaseURL)
		fmt.Println()

		// API keys status
		fmt.Println("  API Keys:")
		keys := config.CheckAPIKeys(cfg)
		for _, k := range keys {
			status := "❌ not set (optional)"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-25s %s\n", k.Name+":", status)
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
