package report

// ReportTemplate is the HTML template for risk and portfolio reports.
// It is embedded as a Go constant — no external file dependencies.
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --green: #16a34a;
    --red: #dc2626;
    --orange: #ea580c;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 900px;
    margin: 0 auto;
    padding: 20px;
  }
  h1, h2, h3 { font-weight: 600; }
  h1 { font-size: 1.5rem; margin-bottom: 4px; }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  h3 { font-size: 1rem; margin: 16px 0 8px; }
  p { margin: 6px 0; }
  .muted { color: var(--muted); font-size: 0.85rem; }

  /* Header */
  .header {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    border-bottom: 3px solid var(--accent);
    padding-bottom: 12px;
    margin-bottom: 16px;
  }
  .header-left h1 { color: var(--accent); }
  .header-right { text-align: right; }
  .ticker-badge {
    display: inline-block;
    background: var(--accent);
    color: white;
    padding: 2px 12px;
    border-radius: 4px;
    font-weight: 700;
    font-size: 1.1rem;
    margin-right: 8px;
  }

  /* Snapshot bar */
  .snapshot-bar {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(140px, 1fr));
    gap: 8px;
    background: var(--section-bg);
    padding: 12px;
    border-radius: 8px;
    margin-bottom: 16px;
  }
  .snapshot-item { text-align: center; }
  .snapshot-item .label { font-size: 0.75rem; color: var(--muted); text-transform: uppercase; }
  .snapshot-item .value { font-size: 1rem; font-weight: 600; }

  /* Score badges */
  .score-box {
    display: flex;
    align-items: center;
    gap: 16px;
    background: var(--section-bg);
    padding: 14px 18px;
    border-radius: 8px;
    margin-bottom: 12px;
  }
  .score-badge {
    padding: 6px 16px;
    border-radius: 6px;
    font-weight: 700;
    color: white;
  }
  .score-badge.low, .score-badge.good, .score-badge.pass { background: var(--green); }
  .score-badge.moderate, .score-badge.fair { background: var(--orange); }
  .score-badge.high, .score-badge.very-high, .score-badge.poor, .score-badge.fail { background: var(--red); }

  /* Tables */
  table { width: 100%; border-collapse: collapse; margin: 8px 0 16px; font-size: 0.9rem; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid var(--border); }
  th { background: var(--section-bg); font-size: 0.8rem; text-transform: uppercase; color: var(--muted); }
  td.pass { color: var(--green); font-weight: 600; }
  td.fail { color: var(--red); font-weight: 600; }

  ul.plain { list-style: none; margin: 4px 0 12px; }
  ul.plain li { padding: 3px 0 3px 16px; position: relative; }
  ul.plain li::before { content: "•"; position: absolute; left: 2px; color: var(--accent); }
  .warning { color: var(--orange); }

  .disclaimer {
    margin-top: 28px;
    padding-top: 10px;
    border-top: 1px solid var(--border);
    font-size: 0.75rem;
    color: var(--muted);
  }
  @media print { body { padding: 0; } }
</style>
</head>
<body>

<div class="header">
  <div class="header-left">
    <h1>{{.Title}}</h1>
    {{if not .IsPortfolio}}
    <p><span class="ticker-badge">{{.Subject}}</span>{{.Name}}</p>
    <p class="muted">{{.Exchange}} | {{.Sector}}{{if .Industry}} — {{.Industry}}{{end}}</p>
    {{end}}
  </div>
  <div class="header-right">
    <p class="muted">{{.GeneratedAt}}</p>
    <p class="muted">{{.Author}}</p>
  </div>
</div>

{{if .Snapshot}}
<div class="snapshot-bar">
  {{range .Snapshot}}
  <div class="snapshot-item">
    <div class="label">{{.Label}}</div>
    <div class="value">{{.Value}}</div>
  </div>
  {{end}}
</div>
{{end}}

{{if .ShowRisk}}
<h2>{{if .IsPortfolio}}Portfolio Health{{else}}Risk Assessment{{end}}</h2>
<div class="score-box">
  <span class="score-badge {{.RiskClass}}">{{.RiskScore}}</span>
  <span>{{.RiskLevel}}</span>
</div>
{{if .DegradedNote}}<p class="muted">{{.DegradedNote}}</p>{{end}}
<table>
  {{range .MetricRows}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}
</table>
{{if .Correlation}}<p class="muted">{{.Correlation}}</p>{{end}}
{{if .Allocation}}
<h3>Sector Allocation</h3>
<table>
  <tr><th>Sector</th><th>Share</th></tr>
  {{range .Allocation}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>{{end}}
</table>
{{end}}
{{if .Factors}}
<h3>Qualitative Risk Factors</h3>
<table>
  <tr><th>Category</th><th>Description</th><th>Severity</th><th>Likelihood</th></tr>
  {{range .Factors}}
  <tr><td>{{.Category}}</td><td>{{.Description}}</td><td>{{.Severity}}</td><td>{{.Likelihood}}</td></tr>
  {{end}}
</table>
{{end}}
{{end}}

{{if and .ShowStress .VaR1Day}}
<h2>Value at Risk &amp; Stress Tests</h2>
<table>
  <tr><td>VaR 95% 1-day</td><td>{{.VaR1Day}}{{if .VaRPct}} ({{.VaRPct}}){{end}}</td></tr>
  {{if .VaR10Day}}<tr><td>VaR 95% 10-day</td><td>{{.VaR10Day}}</td></tr>{{end}}
  <tr><td>Methodology</td><td>{{.VaRMethodology}}</td></tr>
</table>
{{if .Scenarios}}
<table>
  <tr><th>Scenario</th><th>Stock Impact</th><th>Projected Price</th><th>Loss / Share</th><th>Probability</th></tr>
  {{range .Scenarios}}
  <tr><td>{{.Description}}</td><td>{{.StockImpact}}</td><td>{{.ProjectedPrice}}</td><td>{{.DollarLoss}}</td><td>{{.Probability}}</td></tr>
  {{end}}
</table>
{{end}}
{{end}}

{{if .ShowSuitability}}
<h2>Suitability</h2>
<div class="score-box">
  <span class="score-badge {{.VerdictClass}}">{{.Verdict}}</span>
  <span>{{.Reasoning}}</span>
</div>
{{if .Checks}}
<table>
  <tr><th>Check</th><th>Result</th><th>Detail</th></tr>
  {{range .Checks}}
  <tr><td>{{.Name}}</td><td class="{{.StatusClass}}">{{.Status}}</td><td>{{.Notes}}</td></tr>
  {{end}}
</table>
{{end}}
{{if .Warnings}}
<ul class="plain">
  {{range .Warnings}}<li class="warning">{{.}}</li>{{end}}
</ul>
{{end}}
{{end}}

{{if .ShowCompliance}}
<h2>Compliance Review</h2>
{{if .ManualReview}}<p class="warning">Manual review required before proceeding.</p>{{end}}
{{if .Documentation}}
<table>
  <tr><th>Document</th><th></th><th>Note</th></tr>
  {{range .Documentation}}
  <tr><td>{{.Name}}</td><td class="{{.StatusClass}}">{{.Status}}</td><td>{{.Notes}}</td></tr>
  {{end}}
</table>
{{end}}
{{if .Disclosures}}
<h3>Required Disclosures</h3>
<ul class="plain">{{range .Disclosures}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .Regulations}}
<h3>Applicable Regulations</h3>
<ul class="plain">{{range .Regulations}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .ComplianceRecs}}
<ul class="plain">{{range .ComplianceRecs}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{end}}

{{if .ShowRecommend}}
{{if .ActionItems}}
<h2>Action Items</h2>
<ul class="plain">{{range .ActionItems}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .Mitigation}}
<h2>{{if .IsPortfolio}}Diversification{{else}}Risk Mitigation{{end}}</h2>
<ul class="plain">{{range .Mitigation}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .Monitoring}}
<h2>{{if .IsPortfolio}}Optimization{{else}}Monitoring{{end}}</h2>
<ul class="plain">{{range .Monitoring}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{end}}

<div class="disclaimer">
  Generated for advisory support purposes only. Not financial advice.
  Verify suitability with the client before acting.
</div>

</body>
</html>
`
