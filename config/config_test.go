package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scriptdiff/scriptdiff/config"
	"github.com/scriptdiff/scriptdiff/step/kind"
	"github.com/scriptdiff/scriptdiff/step/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.DefaultConfigFileName)

	c := &config.Config{CommentSteps: []uint32{1000}, Concurrency: 4}
	c.SetLabel("Pause", policy.FlagIfTrue)
	require.NoError(t, c.SaveTo(path))

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadFrom(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("UnknownPolicy", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.DefaultConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(`{"labels":{"Pause":"sometimes"}}`), 0644))

		_, err := config.LoadFrom(path)
		assert.ErrorIs(t, err, policy.ErrUnknownPolicy)
	})
}

func TestTables(t *testing.T) {
	c := &config.Config{
		Labels:       map[string]policy.Policy{"Mit Dialog": policy.ValueOnly},
		CommentSteps: []uint32{75},
	}

	assert.Equal(t, policy.ValueOnly, c.Policies().For("Mit Dialog"))
	assert.Equal(t, policy.FlagIfTrue, c.Policies().For("Schreiben erzwingen"))
	assert.Equal(t, kind.Comment, c.Kinds().Classify(75))
	assert.Equal(t, kind.Comment, c.Kinds().Classify(89))

	var empty config.Config
	assert.Equal(t, policy.LabeledToggle, empty.Policies().For("Mit Dialog"))
	assert.Equal(t, kind.Generic, empty.Kinds().Classify(75))
}
