package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checker/internal/config"
	"checker/internal/domain"
)

func testStorage(t *testing.T) (*JSONStorage, *config.Config) {
	cfg := config.New()
	cfg.OutputJSONDir = filepath.Join(t.TempDir(), "storage")
	return NewJSONStorage(cfg), cfg
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	st, cfg := testStorage(t)

	checked := &domain.Configuration{TestGroups: []domain.TestGroup{
		{Name: "G", Folder: "g", ExpectedFile: "out.txt", Tests: []domain.Test{{Name: "T", TestScore: 10}}},
	}}
	report := domain.NewReport("checker", "checker/config.json", checked, nil, 150*time.Millisecond)

	require.NoError(t, st.Save(report))
	assert.FileExists(t, cfg.GetOutputPath())

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.True(t, loaded.Meta.Valid)
	assert.Equal(t, 1, loaded.Meta.TotalGroups)
	assert.Equal(t, 1, loaded.Meta.TotalTests)
	assert.Equal(t, 10.0, loaded.Meta.TotalScore)
	assert.Nil(t, loaded.Diagnostic)
	assert.Equal(t, checked.TestGroups, loaded.Groups)
}

func TestJSONStorage_SaveDiagnostic(t *testing.T) {
	st, _ := testStorage(t)

	diag := &domain.Diagnostic{Tag: domain.TagDir, Message: "Missing folder", Group: "G", Expected: "checker/g"}
	require.NoError(t, st.Save(domain.NewReport("checker", "checker/config.json", nil, diag, time.Second)))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.False(t, loaded.Meta.Valid)
	require.NotNil(t, loaded.Diagnostic)
	assert.Equal(t, *diag, *loaded.Diagnostic)
}

func TestJSONStorage_LoadErrors(t *testing.T) {
	st, cfg := testStorage(t)

	_, err := st.Load()
	assert.Error(t, err, "missing report")

	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.GetOutputPath()), 0755))
	require.NoError(t, os.WriteFile(cfg.GetOutputPath(), []byte("{"), 0644))
	_, err = st.Load()
	assert.ErrorContains(t, err, "parse report")
}
