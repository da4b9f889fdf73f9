package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := DefaultOptions()

	// Styling and logging are both on out of the box
	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.NotNil(t, app.Scanner)
	require.NotNil(t, app.Selector)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
}

func TestClose_NilLogger(t *testing.T) {
	app := NewForTesting()
	app.Logger = nil

	// Should not panic with nil logger
	err := Close(app)
	require.NoError(t, err)
}

func TestNew_WithOptions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	opts := Options{
		PagerDisabled: true,
		PagerOverride: "less",
		LogEnabled:    false,
		StyleEnabled:  true,
		StyleConfig:   map[string]string{"theme": "default-dark"},
	}

	app, err := New(opts)
	require.NoError(t, err)
	require.NotNil(t, app)

	defer func() { _ = Close(app) }()

	require.NotNil(t, app.Scanner)
	require.NotNil(t, app.Selector)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
}

func TestNew_WithLogEnabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	app, err := New(Options{LogEnabled: true})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.NotNil(t, app.Logger)
}
