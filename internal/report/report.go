package report

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/seenimoa/riskcore/pkg/models"
	"github.com/seenimoa/riskcore/pkg/utils"
)

// ════════════════════════════════════════════════════════════════════
// Report Generator — renders risk & suitability reviews as text / HTML
// ════════════════════════════════════════════════════════════════════

// ReportFormat specifies the output format.
type ReportFormat string

const (
	FormatHTML ReportFormat = "html"
	FormatText ReportFormat = "text"
)

// ReportSection identifies a section to include/exclude.
type ReportSection string

const (
	SectionSummary     ReportSection = "summary"
	SectionRisk        ReportSection = "risk"
	SectionStress      ReportSection = "stress"
	SectionSuitability ReportSection = "suitability"
	SectionCompliance  ReportSection = "compliance"
	SectionRecommend   ReportSection = "recommendation"
)

// AllSections returns all report sections in display order.
func AllSections() []ReportSection {
	return []ReportSection{
		SectionSummary,
		SectionRisk,
		SectionStress,
		SectionSuitability,
		SectionCompliance,
		SectionRecommend,
	}
}

// ReportConfig controls report generation behaviour.
type ReportConfig struct {
	Format   ReportFormat    // output format (default: HTML)
	Sections []ReportSection // sections to include (default: all)
	Title    string          // custom report title (optional)
	Author   string          // author name (optional, default: "riskcore")
}

// DefaultReportConfig returns sensible defaults.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Format:   FormatHTML,
		Sections: AllSections(),
		Author:   "riskcore",
	}
}

// hasSection returns true if the section is included in the config.
func (rc ReportConfig) hasSection(s ReportSection) bool {
	for _, sec := range rc.Sections {
		if sec == s {
			return true
		}
	}
	return false
}

// ════════════════════════════════════════════════════════════════════
// Report Data — flattened for template rendering
// ════════════════════════════════════════════════════════════════════

// ReportData is the template model passed to the HTML template and the
// text renderer. Instrument and portfolio reviews flatten into the same
// shape; IsPortfolio and the Show* flags control which blocks render.
type ReportData struct {
	// Header
	Title       string
	Subject     string // ticker or "Portfolio"
	Name        string
	Exchange    string
	Sector      string
	Industry    string
	Author      string
	GeneratedAt string // US/Eastern formatted
	IsPortfolio bool

	// Snapshot bar (fundamentals or weighted portfolio stats)
	Snapshot []StatRow

	// Risk
	RiskScore    string
	RiskLevel    string
	RiskClass    string // CSS class: low, moderate, high, very-high
	MetricRows   []StatRow
	DegradedNote string
	Correlation  string

	// VaR + stress
	VaR1Day        string
	VaR10Day       string
	VaRPct         string
	VaRMethodology string
	Scenarios      []ScenarioRow
	Factors        []FactorRow

	// Portfolio extras
	Allocation  []StatRow
	HealthScore string
	HealthClass string // CSS class: good, fair, poor

	// Suitability
	Verdict      string // "SUITABLE" / "NOT SUITABLE"
	VerdictClass string // CSS class: pass, fail
	Reasoning    string
	Checks       []CheckRow
	Warnings     []string

	// Compliance
	Documentation  []CheckRow
	Disclosures    []string
	Regulations    []string
	ComplianceRecs []string
	ManualReview   bool

	// Recommendations
	Mitigation  []string
	Monitoring  []string
	ActionItems []string

	// Section visibility flags
	ShowRisk        bool
	ShowStress      bool
	ShowSuitability bool
	ShowCompliance  bool
	ShowRecommend   bool
}

// StatRow is a flattened label/value pair for snapshot and metric tables.
type StatRow struct {
	Label string
	Value string
}

// ScenarioRow is a flattened stress scenario for template rendering.
type ScenarioRow struct {
	Name           string
	Description    string
	StockImpact    string
	ProjectedPrice string
	DollarLoss     string
	Probability    string
}

// FactorRow is a flattened qualitative risk factor.
type FactorRow struct {
	Category    string
	Description string
	Severity    string
	Likelihood  string
}

// CheckRow is a flattened pass/fail row (suitability checks, documents).
type CheckRow struct {
	Name        string
	Status      string // "PASS" / "FAIL" or "✓" / "✗"
	StatusClass string // CSS class: pass, fail
	Notes       string
}

// ════════════════════════════════════════════════════════════════════
// Generate
// ════════════════════════════════════════════════════════════════════

// GenerateInstrumentHTML renders an HTML risk report for one instrument
// review.
func GenerateInstrumentHTML(review *models.InstrumentReview, cfg ReportConfig) (string, error) {
	if review == nil {
		return "", fmt.Errorf("review is nil")
	}
	return renderHTML(buildInstrumentData(review, cfg))
}

// GenerateInstrumentText renders a plain-text risk report (terminal / CLI
// friendly) for one instrument review.
func GenerateInstrumentText(review *models.InstrumentReview, cfg ReportConfig) (string, error) {
	if review == nil {
		return "", fmt.Errorf("review is nil")
	}
	return renderTextReport(buildInstrumentData(review, cfg)), nil
}

// GeneratePortfolioHTML renders an HTML analysis report for a portfolio
// review.
func GeneratePortfolioHTML(review *models.PortfolioReview, cfg ReportConfig) (string, error) {
	if review == nil {
		return "", fmt.Errorf("review is nil")
	}
	return renderHTML(buildPortfolioData(review, cfg))
}

// GeneratePortfolioText renders a plain-text analysis report for a
// portfolio review.
func GeneratePortfolioText(review *models.PortfolioReview, cfg ReportConfig) (string, error) {
	if review == nil {
		return "", fmt.Errorf("review is nil")
	}
	return renderTextReport(buildPortfolioData(review, cfg)), nil
}

func renderHTML(data ReportData) (string, error) {
	tmpl, err := template.New("report").Parse(ReportTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// ════════════════════════════════════════════════════════════════════
// Internal — build template data
// ════════════════════════════════════════════════════════════════════

func buildInstrumentData(r *models.InstrumentReview, cfg ReportConfig) ReportData {
	inst := r.Instrument
	a := r.Assessment

	data := ReportData{
		Title:       cfg.Title,
		Subject:     inst.Ticker,
		Name:        inst.Name,
		Exchange:    inst.Exchange,
		Sector:      inst.Sector,
		Industry:    inst.Industry,
		Author:      cfg.Author,
		GeneratedAt: utils.ToEastern(r.Timestamp).Format("02 Jan 2006, 03:04 PM ET"),

		ShowRisk:        cfg.hasSection(SectionRisk),
		ShowStress:      cfg.hasSection(SectionStress),
		ShowSuitability: cfg.hasSection(SectionSuitability),
		ShowCompliance:  cfg.hasSection(SectionCompliance),
		ShowRecommend:   cfg.hasSection(SectionRecommend),
	}
	if data.Title == "" {
		data.Title = fmt.Sprintf("%s — Risk Assessment", inst.Ticker)
	}

	// Snapshot bar
	if cfg.hasSection(SectionSummary) {
		data.Snapshot = instrumentSnapshot(inst)
	}

	// Risk section
	data.RiskScore = fmt.Sprintf("%d / 10", a.RiskScore)
	data.RiskLevel = string(a.RiskLevel)
	data.RiskClass = riskClass(a.RiskLevel)
	data.MetricRows = []StatRow{
		{Label: "Beta", Value: fmt.Sprintf("%.2f", a.Metrics.Beta)},
		{Label: "Volatility Indicator", Value: fmt.Sprintf("%.2f", a.Metrics.VolatilityIndicator)},
		{Label: "Financial Leverage", Value: fmt.Sprintf("%.2f", a.Metrics.FinancialLeverage)},
		{Label: "Liquidity Risk", Value: string(a.Metrics.LiquidityRisk)},
		{Label: "Valuation Risk", Value: string(a.Metrics.ValuationRisk)},
		{Label: "Profitability", Value: string(a.Metrics.ProfitabilityStability)},
	}
	if a.Metrics.Degraded {
		data.DegradedNote = fmt.Sprintf("Defaults substituted for: %s",
			strings.Join(a.Metrics.DegradedFields, ", "))
	}
	data.Correlation = a.Correlation.Analysis

	// VaR + stress
	data.VaR1Day = utils.FormatUSD(a.VaR.VaR951Day)
	data.VaR10Day = utils.FormatUSD(a.VaR.VaR9510Day)
	data.VaRPct = utils.FormatPct(a.VaR.VaR951DayPercent)
	data.VaRMethodology = a.VaR.Methodology
	data.Scenarios = flattenScenarios(a.StressTests.Scenarios)
	data.Factors = flattenFactors(a.RiskFactors)

	// Suitability + compliance
	fillVerdict(&data, r.Suitability)
	fillCompliance(&data, r.Compliance)

	// Recommendations
	data.Mitigation = r.Mitigation
	data.Monitoring = r.Monitoring

	return data
}

func buildPortfolioData(r *models.PortfolioReview, cfg ReportConfig) ReportData {
	a := r.Analysis

	data := ReportData{
		Title:       cfg.Title,
		Subject:     "Portfolio",
		Author:      cfg.Author,
		GeneratedAt: utils.ToEastern(r.Timestamp).Format("02 Jan 2006, 03:04 PM ET"),
		IsPortfolio: true,

		ShowRisk:        cfg.hasSection(SectionRisk),
		ShowStress:      cfg.hasSection(SectionStress),
		ShowSuitability: cfg.hasSection(SectionSuitability),
		ShowCompliance:  cfg.hasSection(SectionCompliance),
		ShowRecommend:   cfg.hasSection(SectionRecommend),
	}
	if data.Title == "" {
		data.Title = "Portfolio Analysis"
	}

	if cfg.hasSection(SectionSummary) {
		data.Snapshot = []StatRow{
			{Label: "Total Value", Value: utils.FormatUSDCompact(a.TotalValue)},
			{Label: "Positions", Value: fmt.Sprintf("%d", a.NumberOfPositions)},
			{Label: "Portfolio Beta", Value: fmt.Sprintf("%.3f", a.PortfolioBeta)},
			{Label: "Weighted P/E", Value: fmt.Sprintf("%.2f", a.WeightedPE)},
			{Label: "Weighted D/E", Value: fmt.Sprintf("%.2f", a.WeightedDebtToEquity)},
			{Label: "Concentration", Value: utils.FormatPct(a.ConcentrationRatio * 100)},
		}
	}

	// Risk section (portfolio flavour)
	data.RiskScore = fmt.Sprintf("%d / 100", a.HealthScore)
	data.RiskLevel = fmt.Sprintf("Diversification: %s", a.Diversification.Level)
	data.RiskClass = healthClass(a.HealthScore)
	data.HealthScore = fmt.Sprintf("%d / 100", a.HealthScore)
	data.HealthClass = healthClass(a.HealthScore)
	data.MetricRows = []StatRow{
		{Label: "Diversification Score", Value: fmt.Sprintf("%d / 10", a.Diversification.Score)},
		{Label: "Diversification Level", Value: string(a.Diversification.Level)},
		{Label: "Concentration Risk", Value: string(a.RiskConcentration)},
		{Label: "Correlation Risk", Value: string(a.Correlation.CorrelationRisk)},
		{Label: "Avg Position Size", Value: utils.FormatUSDCompact(a.AveragePositionSize)},
	}
	data.Correlation = a.Correlation.Analysis

	for _, sector := range sortedSectors(a.Diversification.SectorAllocation) {
		data.Allocation = append(data.Allocation, StatRow{
			Label: sector,
			Value: utils.FormatPct(a.Diversification.SectorAllocation[sector]),
		})
	}

	// Portfolio VaR renders in the stress section without scenarios.
	data.VaR1Day = utils.FormatUSD(a.VaR.VaR951Day)
	data.VaRPct = utils.FormatPct(a.VaR.VaR951DayPct)
	data.VaRMethodology = a.VaR.Methodology

	fillVerdict(&data, r.Suitability)
	fillCompliance(&data, r.Compliance)

	data.ActionItems = r.ActionItems
	data.Mitigation = a.Diversification.Recommendations
	data.Monitoring = a.OptimizationRecs

	return data
}

func instrumentSnapshot(inst *models.Instrument) []StatRow {
	rows := []StatRow{}
	if inst.LastPrice > 0 {
		rows = append(rows, StatRow{Label: "Last Price", Value: utils.FormatUSD(inst.LastPrice)})
	}
	if inst.MarketCap > 0 {
		rows = append(rows, StatRow{Label: "Market Cap", Value: utils.FormatUSDCompact(inst.MarketCap)})
	}
	if inst.PE > 0 {
		rows = append(rows, StatRow{Label: "P/E", Value: fmt.Sprintf("%.2f", inst.PE)})
	}
	if inst.PB > 0 {
		rows = append(rows, StatRow{Label: "P/B", Value: fmt.Sprintf("%.2f", inst.PB)})
	}
	if inst.Beta > 0 {
		rows = append(rows, StatRow{Label: "Beta", Value: fmt.Sprintf("%.2f", inst.Beta)})
	}
	if inst.DividendYield > 0 {
		rows = append(rows, StatRow{Label: "Dividend Yield", Value: utils.FormatPct(inst.DividendYield)})
	}
	if inst.LastVolume > 0 {
		rows = append(rows, StatRow{Label: "Volume", Value: utils.FormatVolume(inst.LastVolume)})
	}
	return rows
}

func fillVerdict(data *ReportData, v models.SuitabilityVerdict) {
	if v.Suitable {
		data.Verdict = "SUITABLE"
		data.VerdictClass = "pass"
	} else {
		data.Verdict = "NOT SUITABLE"
		data.VerdictClass = "fail"
	}
	data.Reasoning = v.Reasoning
	data.Warnings = v.Warnings

	for _, c := range v.Checks {
		row := CheckRow{Name: c.Name, Notes: c.Notes}
		if c.Passed {
			row.Status = "PASS"
			row.StatusClass = "pass"
		} else {
			row.Status = "FAIL"
			row.StatusClass = "fail"
		}
		data.Checks = append(data.Checks, row)
	}
}

func fillCompliance(data *ReportData, c models.ComplianceReview) {
	data.ManualReview = c.RequiresManualReview
	data.Disclosures = c.RequiredDisclosures
	data.Regulations = c.Regulations
	data.ComplianceRecs = c.Recommendations

	for _, d := range c.Documentation {
		row := CheckRow{Name: d.Document, Notes: d.Notes}
		if d.Present {
			row.Status = "✓"
			row.StatusClass = "pass"
		} else {
			row.Status = "✗"
			row.StatusClass = "fail"
		}
		data.Documentation = append(data.Documentation, row)
	}
}

func flattenScenarios(scenarios []models.StressScenario) []ScenarioRow {
	rows := make([]ScenarioRow, len(scenarios))
	for i, s := range scenarios {
		rows[i] = ScenarioRow{
			Name:           s.Name,
			Description:    s.Description,
			StockImpact:    utils.FormatPct(s.StockImpact),
			ProjectedPrice: utils.FormatUSD(s.ProjectedPrice),
			DollarLoss:     utils.FormatUSD(s.DollarLoss),
			Probability:    s.Probability,
		}
	}
	return rows
}

func flattenFactors(factors []models.RiskFactor) []FactorRow {
	rows := make([]FactorRow, len(factors))
	for i, f := range factors {
		rows[i] = FactorRow{
			Category:    f.Category,
			Description: f.Description,
			Severity:    f.Severity,
			Likelihood:  f.Likelihood,
		}
	}
	return rows
}

func riskClass(level models.RiskLevel) string {
	switch level {
	case models.RiskLow:
		return "low"
	case models.RiskModerate:
		return "moderate"
	case models.RiskHigh:
		return "high"
	default:
		return "very-high"
	}
}

func healthClass(score int) string {
	switch {
	case score >= 70:
		return "good"
	case score >= 40:
		return "fair"
	default:
		return "poor"
	}
}

func sortedSectors(allocation map[string]float64) []string {
	sectors := make([]string, 0, len(allocation))
	for s := range allocation {
		sectors = append(sectors, s)
	}
	// Largest share first; ties by name for stable output.
	sort.Slice(sectors, func(i, j int) bool {
		if allocation[sectors[i]] != allocation[sectors[j]] {
			return allocation[sectors[i]] > allocation[sectors[j]]
		}
		return sectors[i] < sectors[j]
	})
	return sectors
}

// ════════════════════════════════════════════════════════════════════
// Plain-text renderer
// ════════════════════════════════════════════════════════════════════

func renderTextReport(d ReportData) string {
	var sb strings.Builder
	line := strings.Repeat("═", 60)
	thinLine := strings.Repeat("─", 60)

	sb.WriteString("\n" + line + "\n")
	sb.WriteString(fmt.Sprintf("  %s\n", d.Title))
	sb.WriteString(fmt.Sprintf("  Generated: %s | Author: %s\n", d.GeneratedAt, d.Author))
	sb.WriteString(line + "\n\n")

	// Subject info
	if d.IsPortfolio {
		sb.WriteString("  Portfolio Review\n")
	} else {
		sb.WriteString(fmt.Sprintf("  %s (%s) — %s\n", d.Name, d.Subject, d.Exchange))
		sb.WriteString(fmt.Sprintf("  Sector: %s | Industry: %s\n", d.Sector, d.Industry))
	}
	sb.WriteString(thinLine + "\n")

	// Snapshot
	if len(d.Snapshot) > 0 {
		for _, row := range d.Snapshot {
			sb.WriteString(fmt.Sprintf("  %-22s %s\n", row.Label+":", row.Value))
		}
		sb.WriteString(thinLine + "\n")
	}

	// Risk
	if d.ShowRisk {
		if d.IsPortfolio {
			sb.WriteString(fmt.Sprintf("\n  ■ PORTFOLIO HEALTH: %s\n", d.HealthScore))
		} else {
			sb.WriteString(fmt.Sprintf("\n  ■ RISK ASSESSMENT: %s (%s)\n", d.RiskScore, d.RiskLevel))
		}
		for _, row := range d.MetricRows {
			sb.WriteString(fmt.Sprintf("    %-24s %s\n", row.Label+":", row.Value))
		}
		if d.DegradedNote != "" {
			sb.WriteString(fmt.Sprintf("    Note: %s\n", d.DegradedNote))
		}
		if d.Correlation != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", d.Correlation))
		}
		if len(d.Allocation) > 0 {
			sb.WriteString("\n    Sector Allocation:\n")
			for _, row := range d.Allocation {
				sb.WriteString(fmt.Sprintf("      %-22s %s\n", row.Label+":", row.Value))
			}
		}
		for _, f := range d.Factors {
			sb.WriteString(fmt.Sprintf("    [%s/%s] %s — %s\n", f.Severity, f.Likelihood, f.Category, f.Description))
		}
		sb.WriteString(thinLine + "\n")
	}

	// Stress + VaR
	if d.ShowStress && d.VaR1Day != "" {
		sb.WriteString("\n  ■ VALUE AT RISK & STRESS TESTS\n")
		sb.WriteString(fmt.Sprintf("    VaR 95%% 1-day:  %s (%s)\n", d.VaR1Day, d.VaRPct))
		if d.VaR10Day != "" {
			sb.WriteString(fmt.Sprintf("    VaR 95%% 10-day: %s\n", d.VaR10Day))
		}
		sb.WriteString(fmt.Sprintf("    Methodology:    %s\n", d.VaRMethodology))
		for _, s := range d.Scenarios {
			sb.WriteString(fmt.Sprintf("    %-22s %s → %s (loss %s, prob %s)\n",
				s.Name+":", s.StockImpact, s.ProjectedPrice, s.DollarLoss, s.Probability))
		}
		sb.WriteString(thinLine + "\n")
	}

	// Suitability
	if d.ShowSuitability {
		sb.WriteString(fmt.Sprintf("\n  ★ SUITABILITY: %s\n", d.Verdict))
		sb.WriteString(fmt.Sprintf("  %s\n", d.Reasoning))
		for _, c := range d.Checks {
			sb.WriteString(fmt.Sprintf("    [%s] %s — %s\n", c.Status, c.Name, c.Notes))
		}
		for _, w := range d.Warnings {
			sb.WriteString(fmt.Sprintf("    ⚠ %s\n", w))
		}
		sb.WriteString(thinLine + "\n")
	}

	// Compliance
	if d.ShowCompliance {
		sb.WriteString("\n  ■ COMPLIANCE REVIEW\n")
		if d.ManualReview {
			sb.WriteString("    Manual review required.\n")
		}
		for _, doc := range d.Documentation {
			sb.WriteString(fmt.Sprintf("    %s\n", doc.Notes))
		}
		if len(d.Disclosures) > 0 {
			sb.WriteString("    Required disclosures:\n")
			for _, disc := range d.Disclosures {
				sb.WriteString(fmt.Sprintf("      - %s\n", disc))
			}
		}
		if len(d.Regulations) > 0 {
			sb.WriteString(fmt.Sprintf("    Regulations: %s\n", strings.Join(d.Regulations, "; ")))
		}
		for _, rec := range d.ComplianceRecs {
			sb.WriteString(fmt.Sprintf("    • %s\n", rec))
		}
		sb.WriteString(thinLine + "\n")
	}

	// Recommendations
	if d.ShowRecommend {
		writeList := func(title string, items []string) {
			if len(items) == 0 {
				return
			}
			sb.WriteString(fmt.Sprintf("\n  ■ %s\n", title))
			for _, item := range items {
				sb.WriteString(fmt.Sprintf("    • %s\n", item))
			}
		}
		writeList("ACTION ITEMS", d.ActionItems)
		if d.IsPortfolio {
			writeList("DIVERSIFICATION", d.Mitigation)
			writeList("OPTIMIZATION", d.Monitoring)
		} else {
			writeList("RISK MITIGATION", d.Mitigation)
			writeList("MONITORING", d.Monitoring)
		}
		sb.WriteString(thinLine + "\n")
	}

	sb.WriteString("\n" + line + "\n")
	sb.WriteString("  Disclaimer: Generated for advisory support purposes only.\n")
	sb.WriteString("  Not financial advice. Verify suitability with the client before acting.\n")
	sb.WriteString(line + "\n")

	return sb.String()
}
