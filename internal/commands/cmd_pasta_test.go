package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPastaCmd_AddAndLs(t *testing.T) {
	flags := newTestFlags(t)

	out, err := runApp(t, NewPastaCmd(flags).Register,
		"pasta", "add", "--name", "Gnocchi", "--min", "2", "--max", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Gnocchi")

	out, err = runApp(t, NewPastaCmd(flags).Register, "pasta", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "Gnocchi")
	assert.Contains(t, out, "custom")
	assert.Contains(t, out, "spaghetti")
	assert.Contains(t, out, "built-in")
}

func TestPastaCmd_AddInvalid(t *testing.T) {
	flags := newTestFlags(t)

	_, err := runApp(t, NewPastaCmd(flags).Register,
		"pasta", "add", "--name", "Gnocchi", "--min", "10", "--max", "2")
	assert.Error(t, err, "inverted range rejected")

	_, err = runApp(t, NewPastaCmd(flags).Register,
		"pasta", "add", "--name", "spaghetti", "--min", "8", "--max", "10")
	assert.Error(t, err, "built-in name collision rejected")
}

func TestPastaCmd_Rm(t *testing.T) {
	flags := newTestFlags(t)
	require.NoError(t, flags.Catalog.AddCustom("Gnocchi", 2, 4))

	out, err := runApp(t, NewPastaCmd(flags).Register, "pasta", "rm", "gnocchi")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")

	_, err = runApp(t, NewPastaCmd(flags).Register, "pasta", "rm", "gnocchi")
	assert.Error(t, err, "already removed")

	_, err = runApp(t, NewPastaCmd(flags).Register, "pasta", "rm", "spaghetti")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "built-in")

	_, err = runApp(t, NewPastaCmd(flags).Register, "pasta", "rm")
	assert.Error(t, err, "name argument required")
}

func TestValidateWholeMinutes(t *testing.T) {
	assert.NoError(t, validateWholeMinutes("8"))
	assert.Error(t, validateWholeMinutes("abc"))
	assert.Error(t, validateWholeMinutes("0"))
	assert.Error(t, validateWholeMinutes("61"))
	assert.Error(t, validateWholeMinutes("2.5"))
}
