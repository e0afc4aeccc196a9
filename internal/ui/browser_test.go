package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checker/internal/config"
	"checker/internal/domain"
)

func TestBrowser_BuildTree(t *testing.T) {
	b := NewBrowser(config.New())

	root := b.buildTree(sampleConfig())
	assert.Equal(t, "checker", root.GetText())

	groups := root.GetChildren()
	require.Len(t, groups, 2)
	assert.Equal(t, "Intro", groups[0].GetText())
	assert.Empty(t, groups[1].GetChildren())

	tests := groups[0].GetChildren()
	require.Len(t, tests, 2)
	assert.Equal(t, "hello (10)", tests[0].GetText())
	assert.Equal(t, "loops (2.5)", tests[1].GetText())
}

func TestBrowser_FormatDetails(t *testing.T) {
	b := NewBrowser(config.New())
	root := b.buildTree(sampleConfig())

	details := b.formatDetails(root.GetReference())
	assert.Contains(t, details, "[yellow]Tests:[white] 2")

	group := root.GetChildren()[0]
	assert.Contains(t, b.formatDetails(group.GetReference()), "[yellow]Folder:[white] checker/intro")

	test := group.GetChildren()[1]
	assert.Contains(t, b.formatDetails(test.GetReference()), "checker/intro/loops/test.m")
}

func TestBrowser_EscapesNames(t *testing.T) {
	b := NewBrowser(config.New())
	cfg := &domain.Configuration{TestGroups: []domain.TestGroup{
		{Name: "G[red]", Folder: "g", ExpectedFile: "out.txt", Tests: []domain.Test{{Name: "T[blue]", TestScore: 1}}},
	}}

	root := b.buildTree(cfg)
	group := root.GetChildren()[0]
	assert.Equal(t, "G[red[]", group.GetText())
	assert.Equal(t, "T[blue[] (1)", group.GetChildren()[0].GetText())

	details := b.formatDetails(group.GetChildren()[0].GetReference())
	assert.Contains(t, details, "[cyan]Test:[white] T[blue[]")
	assert.Contains(t, details, "[yellow]Group:[white] G[red[]")
}
