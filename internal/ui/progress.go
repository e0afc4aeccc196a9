package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many tests have had their layout checked
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	total int
}

// NewProgressBar creates a new progress bar
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, count)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, total: count}
}

// Update sets the number of checked tests
func (p *ProgressBar) Update(checked int) {
	p.bar.Set(checked)
	p.bar.Describe(describe(checked, p.total))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

// Abort leaves the bar where it stopped
func (p *ProgressBar) Abort() {
	p.bar.Exit()
	fmt.Fprint(os.Stderr, "\n")
}

func describe(checked, total int) string {
	return color.CyanString("Checking layout: ") + color.GreenString("[%d/%d tests]", checked, total)
}
