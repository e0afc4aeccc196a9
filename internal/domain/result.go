package domain

import "time"

// TestResult is the outcome of running a single test
type TestResult struct {
	Group   string  `json:"group"`
	Test    string  `json:"test"`
	Score   float64 `json:"score"` // Fraction in [0,1]
	Message string  `json:"message"`
}

// GroupResult collects the results of one test group
type GroupResult struct {
	Group   string       `json:"group"`
	Results []TestResult `json:"results"`
}

// ReportMeta contains metadata about a check run
type ReportMeta struct {
	ConfigPath      string  `json:"config_path"`
	Root            string  `json:"root"`
	Valid           bool    `json:"valid"`
	TotalGroups     int     `json:"total_groups"`
	TotalTests      int     `json:"total_tests"`
	TotalScore      float64 `json:"total_score"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// Report is the persisted outcome of a check run
type Report struct {
	Meta       ReportMeta  `json:"meta"`
	Diagnostic *Diagnostic `json:"diagnostic,omitempty"`
	Groups     []TestGroup `json:"groups,omitempty"`
}

// NewReport builds a report for cfg; cfg may be nil when loading failed.
func NewReport(root, configPath string, cfg *Configuration, diag *Diagnostic, duration time.Duration) Report {
	r := Report{
		Meta: ReportMeta{
			ConfigPath:      configPath,
			Root:            root,
			Valid:           cfg != nil && diag == nil,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Diagnostic: diag,
	}
	if cfg != nil {
		r.Meta.TotalGroups = len(cfg.TestGroups)
		r.Meta.TotalTests = cfg.TotalTests()
		r.Meta.TotalScore = cfg.TotalScore()
		r.Groups = cfg.TestGroups
	}
	return r
}
