package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"checker/internal/config"
	"checker/internal/domain"
)

// Viewer displays a configuration interactively
type Viewer interface {
	View(cfg *domain.Configuration) error
}

// Browser shows the test groups and tests of a configuration in a TUI tree
type Browser struct {
	config *config.Config
}

// NewBrowser creates a new Browser
func NewBrowser(cfg *config.Config) *Browser {
	return &Browser{config: cfg}
}

// View runs the browser until the user quits with q, Esc or Ctrl+C
func (b *Browser) View(cfg *domain.Configuration) error {
	app := tview.NewApplication()

	root := b.buildTree(cfg)
	tree := tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root)
	tree.SetBorder(true).SetTitle(" Test Groups ")

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s | %d group(s), %d test(s), total score %s | ↑↓ navigate, Enter expand/collapse, q quit ",
			tview.Escape(b.config.GetConfigPath()), len(cfg.TestGroups), cfg.TotalTests(), formatScore(cfg.TotalScore())))

	tree.SetChangedFunc(func(node *tview.TreeNode) {
		detailsView.SetText(b.formatDetails(node.GetReference()))
	})
	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		node.SetExpanded(!node.IsExpanded())
	})
	tree.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetText(b.formatDetails(root.GetReference()))

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tree, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(tree).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// groupRef and testRef are attached to tree nodes so details can be rendered on selection
type groupRef struct {
	group domain.TestGroup
}

type testRef struct {
	group domain.TestGroup
	test  domain.Test
}

func (b *Browser) buildTree(cfg *domain.Configuration) *tview.TreeNode {
	root := tview.NewTreeNode(tview.Escape(b.config.RootPath)).
		SetColor(tcell.ColorWhite).
		SetReference(cfg)

	for _, group := range cfg.TestGroups {
		groupNode := tview.NewTreeNode(tview.Escape(group.Name)).
			SetColor(tcell.ColorDarkCyan).
			SetReference(groupRef{group: group})
		for _, test := range group.Tests {
			groupNode.AddChild(tview.NewTreeNode(fmt.Sprintf("%s (%s)", tview.Escape(test.Name), formatScore(test.TestScore))).
				SetColor(tcell.ColorYellow).
				SetReference(testRef{group: group, test: test}))
		}
		root.AddChild(groupNode)
	}
	return root
}

// formatDetails renders the details pane using tview color tags; names from the configuration are escaped
func (b *Browser) formatDetails(ref any) string {
	var builder strings.Builder

	switch r := ref.(type) {
	case *domain.Configuration:
		fmt.Fprintf(&builder, "[cyan]Config:[white] %s\n", tview.Escape(b.config.GetConfigPath()))
		fmt.Fprintf(&builder, "[cyan]Root:[white] %s\n\n", tview.Escape(b.config.RootPath))
		fmt.Fprintf(&builder, "[yellow]Test groups:[white] %d\n", len(r.TestGroups))
		fmt.Fprintf(&builder, "[yellow]Tests:[white] %d\n", r.TotalTests())
		fmt.Fprintf(&builder, "[yellow]Total score:[white] %s\n", formatScore(r.TotalScore()))
	case groupRef:
		fmt.Fprintf(&builder, "[cyan]Test group:[white] %s\n\n", tview.Escape(r.group.Name))
		fmt.Fprintf(&builder, "[yellow]Folder:[white] %s\n", tview.Escape(filepath.Join(b.config.RootPath, r.group.Folder)))
		fmt.Fprintf(&builder, "[yellow]Expected file:[white] %s\n", tview.Escape(r.group.ExpectedFile))
		fmt.Fprintf(&builder, "[yellow]Tests:[white] %d\n", len(r.group.Tests))
		fmt.Fprintf(&builder, "[yellow]Score:[white] %s\n", formatScore(r.group.TotalScore()))
	case testRef:
		fmt.Fprintf(&builder, "[cyan]Test:[white] %s\n\n", tview.Escape(r.test.Name))
		fmt.Fprintf(&builder, "[yellow]Group:[white] %s\n", tview.Escape(r.group.Name))
		fmt.Fprintf(&builder, "[yellow]Score:[white] %s\n", formatScore(r.test.TestScore))
		fmt.Fprintf(&builder, "[yellow]Test file:[white] %s\n", tview.Escape(filepath.Join(b.config.RootPath, r.group.Folder, r.test.Name, domain.TestFileName)))
	}
	return builder.String()
}
