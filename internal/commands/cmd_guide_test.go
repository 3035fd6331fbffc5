package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideCmd_Plain(t *testing.T) {
	flags := newTestFlags(t)
	require.NoError(t, flags.Catalog.AddCustom("Gnocchi", 2, 4))

	out, err := runApp(t, NewGuideCmd(flags).Register, "guide", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "# Pasta Cooking Guide")
	assert.Contains(t, out, "spaghetti")
	assert.Contains(t, out, "8-10 minutes")
	assert.Contains(t, out, "Gnocchi")
}

func TestBuildGuide_NoCustomSection(t *testing.T) {
	flags := newTestFlags(t)

	md := buildGuide(flags.Catalog)
	assert.Contains(t, md, "## Built-in shapes")
	assert.NotContains(t, md, "## Your shapes")
}

func TestSweepCmd(t *testing.T) {
	flags := newTestFlags(t)

	out, err := runApp(t, NewSweepCmd(flags).Register, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "No finished timers")

	id := flags.Manager.Register("spaghetti", 9, false)
	require.True(t, flags.Manager.Start(id, nil))
	require.True(t, flags.Manager.Cancel(id))

	out, err = runApp(t, NewSweepCmd(flags).Register, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "Swept 1 timer(s)")
}
