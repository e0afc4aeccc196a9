package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"checker/internal/config"
	"checker/internal/discovery"
	"checker/internal/domain"
	"checker/internal/execution"
	"checker/internal/loader"
	"checker/internal/storage"
	"checker/internal/ui"
)

const validConfig = `{
	"test-groups": [
		{"name": "G", "folder": "g", "expected-file": "out.txt",
		 "tests": [{"name": "T", "test-score": 10}]}
	]
}`

type fixture struct {
	cfg     *config.Config
	out     *bytes.Buffer
	check   *CheckCommand
	list    *ListCommand
	storage *storage.JSONStorage
}

// newFixture builds commands around a temporary working area holding a
// "checker" root. The root is only created when withRoot is set.
func newFixture(t *testing.T, withRoot bool, configJSON string) *fixture {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	dir := t.TempDir()
	cfg := config.New()
	cfg.RootPath = filepath.Join(dir, "checker")
	cfg.OutputJSONDir = filepath.Join(dir, "storage")
	cfg.Flags.NoProgress = true

	if withRoot {
		require.NoError(t, os.MkdirAll(cfg.RootPath, 0755))
	}
	if configJSON != "" {
		require.NoError(t, os.WriteFile(cfg.GetConfigPath(), []byte(configJSON), 0644))
	}

	var out bytes.Buffer
	log := zaptest.NewLogger(t)
	formatter := ui.NewFormatterTo(cfg, &out)
	pf := newPreflight(cfg, loader.NewLoader(), formatter, log)
	st := storage.NewJSONStorage(cfg)

	return &fixture{
		cfg:     cfg,
		out:     &out,
		check:   NewCheckCommand(cfg, pf, st, formatter, log),
		list:    NewListCommand(cfg, pf, discovery.NewScanner(cfg.PathsToIgnore), discovery.NewFilter(), formatter),
		storage: st,
	}
}

func (f *fixture) makeTest(t *testing.T, folder, name string) {
	t.Helper()
	dir := filepath.Join(f.cfg.RootPath, folder, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.TestFileName), []byte("% test"), 0644))
}

func testCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestCheckCommand_MissingRoot(t *testing.T) {
	f := newFixture(t, false, "")

	err := f.check.Execute(testCmd(), nil)
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.Contains(t, f.out.String(), "[ FATAL ] Missing '"+f.cfg.RootPath+"' folder!")
}

func TestCheckCommand_MissingConfig(t *testing.T) {
	f := newFixture(t, true, "")

	err := f.check.Execute(testCmd(), nil)
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, loader.ErrNotFound)
	assert.Contains(t, f.out.String(), "[ FATAL ] Missing JSON config file (expected '"+f.cfg.GetConfigPath()+"')!")
}

func TestCheckCommand_MalformedConfig(t *testing.T) {
	f := newFixture(t, true, `{"test-groups": [`)

	err := f.check.Execute(testCmd(), nil)
	require.Error(t, err)
	assert.False(t, IsReported(err), "parse errors are not checker diagnostics")
	assert.Empty(t, f.out.String())
}

func TestCheckCommand_InvalidShape(t *testing.T) {
	f := newFixture(t, true, `{"groups": []}`)

	err := f.check.Execute(testCmd(), nil)
	require.Error(t, err)
	assert.True(t, IsReported(err))

	out := f.out.String()
	assert.Contains(t, out, "[ FATAL:JSON ] Missing 'test-groups'.")
	assert.Contains(t, out, "[ FATAL ] JSON config ('"+f.cfg.GetConfigPath()+"') is invalid!")

	report, err := f.storage.Load()
	require.NoError(t, err)
	assert.False(t, report.Meta.Valid)
	require.NotNil(t, report.Diagnostic)
	assert.Equal(t, domain.TagJSON, report.Diagnostic.Tag)
}

func TestCheckCommand_MissingTestFile(t *testing.T) {
	f := newFixture(t, true, validConfig)
	require.NoError(t, os.MkdirAll(filepath.Join(f.cfg.RootPath, "g", "T"), 0755))

	err := f.check.Execute(testCmd(), nil)
	require.Error(t, err)
	assert.Contains(t, f.out.String(), "[ FATAL:TEST ] Missing 'test.m' for test group 'G' / test 'T'")
}

func TestCheckCommand_Valid(t *testing.T) {
	f := newFixture(t, true, validConfig)
	f.makeTest(t, "g", "T")

	require.NoError(t, f.check.Execute(testCmd(), nil))

	out := f.out.String()
	assert.Contains(t, out, "G (folder: g, expected: out.txt, score 10)")
	assert.Contains(t, out, "✓ Configuration and layout are valid")

	report, err := f.storage.Load()
	require.NoError(t, err)
	assert.True(t, report.Meta.Valid)
	assert.Equal(t, 1, report.Meta.TotalTests)
}

func TestCheckCommand_ShowsPreviousReport(t *testing.T) {
	f := newFixture(t, true, validConfig)

	require.Error(t, f.check.Execute(testCmd(), nil))
	assert.NotContains(t, f.out.String(), "Previous check")

	f.makeTest(t, "g", "T")
	f.out.Reset()
	require.NoError(t, f.check.Execute(testCmd(), nil))
	assert.Contains(t, f.out.String(), "): invalid [ FATAL:DIR ]")

	f.out.Reset()
	require.NoError(t, f.check.Execute(testCmd(), nil))
	assert.Contains(t, f.out.String(), "): valid")
}

func TestRunCommand_NotImplemented(t *testing.T) {
	f := newFixture(t, true, validConfig)
	f.makeTest(t, "g", "T")
	run := NewRunCommand(f.check, execution.NewRunner(nil))

	err := run.Execute(testCmd(), nil)
	assert.ErrorIs(t, err, execution.ErrNotImplemented)
	assert.False(t, IsReported(err))
}

func TestRunCommand_StopsOnInvalidConfig(t *testing.T) {
	f := newFixture(t, true, validConfig)
	run := NewRunCommand(f.check, execution.NewRunner(nil))

	err := run.Execute(testCmd(), nil)
	assert.True(t, IsReported(err))
	assert.NotErrorIs(t, err, execution.ErrNotImplemented)
}

func TestListCommand(t *testing.T) {
	f := newFixture(t, true, `{"test-groups": [
		{"name": "G", "folder": "g", "expected-file": "out.txt",
		 "tests": [{"name": "hello", "test-score": 1}, {"name": "loops", "test-score": 2}]}
	]}`)

	t.Run("does not need the layout", func(t *testing.T) {
		f.out.Reset()
		require.NoError(t, f.list.Execute(testCmd(), nil))
		assert.Contains(t, f.out.String(), "hello  1")
		assert.Contains(t, f.out.String(), "loops  2")
	})

	t.Run("filters by name", func(t *testing.T) {
		f.out.Reset()
		f.cfg.Flags.NameFilter = "loop*"
		t.Cleanup(func() { f.cfg.Flags.NameFilter = "" })

		require.NoError(t, f.list.Execute(testCmd(), nil))
		assert.NotContains(t, f.out.String(), "hello")
		assert.Contains(t, f.out.String(), "loops  2")
	})

	t.Run("reports undeclared folders", func(t *testing.T) {
		f.out.Reset()
		f.makeTest(t, "g", "hello")
		f.makeTest(t, "g", "extra")
		f.cfg.Flags.Undeclared = true
		t.Cleanup(func() { f.cfg.Flags.Undeclared = false })

		require.NoError(t, f.list.Execute(testCmd(), nil))
		assert.Contains(t, f.out.String(), "└── g/extra")
		assert.NotContains(t, f.out.String(), "g/hello")
	})
}

type recordingViewer struct {
	viewed *domain.Configuration
}

func (v *recordingViewer) View(cfg *domain.Configuration) error {
	v.viewed = cfg
	return nil
}

func TestBrowseCommand(t *testing.T) {
	f := newFixture(t, true, validConfig)
	viewer := &recordingViewer{}
	browse := NewBrowseCommand(f.check.preflight, viewer)

	require.NoError(t, browse.Execute(testCmd(), nil))
	require.NotNil(t, viewer.viewed)
	assert.Equal(t, "G", viewer.viewed.TestGroups[0].Name)
}

func TestWorkerCommand(t *testing.T) {
	cfg := config.New()
	cfg.Flags.Sleep = 20 * time.Millisecond
	worker := NewWorkerCommand(cfg)

	cmd := testCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, worker.Execute(cmd, nil))
	assert.Equal(t, "Worker was passed 20ms\n", out.String())
}

func TestDemoCommand_MissingExecutable(t *testing.T) {
	cfg := config.New()
	demo := NewDemoCommand(cfg, execution.NewSupervisor(cfg, nil), ui.NewFormatterTo(cfg, &bytes.Buffer{}))
	demo.executable = func() (string, error) { return "", os.ErrNotExist }

	err := demo.Execute(testCmd(), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
