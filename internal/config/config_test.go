// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjkillough/lanta/internal/config"
)

func TestLoadWritesAndReadsDefaultsOnFirstRun(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	log := logrus.New()

	conf, err := config.Load(log)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)

	_, err = config.Load(log)
	require.NoError(t, err)
}

func TestLoadRejectsEmptyGroupList(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, writeRaw(t, dir, "bindings = []\n"))

	_, err := config.Load(logrus.New())
	assert.Error(t, err)
}

func writeRaw(t *testing.T, dir, contents string) error {
	t.Helper()
	lantaDir := filepath.Join(dir, "lanta")
	if err := os.MkdirAll(lantaDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(lantaDir, "config.toml"), []byte(contents), 0644)
}
