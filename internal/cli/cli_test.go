package cli_test

import (
	"bytes"
	"testing"

	"github.com/nearstore/find-store/internal/cli"
	"github.com/nearstore/find-store/internal/geo"
	"github.com/nearstore/find-store/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("zip lookup with defaults", func(t *testing.T) {
		out := &bytes.Buffer{}

		opts, shouldExit, err := cli.Parse([]string{"--zip=27513"}, out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "27513", opts.Zip)
		assert.Empty(t, opts.Address)
		assert.Equal(t, report.Text, opts.Format)
		assert.Equal(t, geo.Miles, opts.Unit)
		assert.Empty(t, opts.StoresPath)
		assert.Equal(t, "27513", opts.Query())
	})

	t.Run("address lookup with options", func(t *testing.T) {
		out := &bytes.Buffer{}

		opts, shouldExit, err := cli.Parse([]string{
			"--address=1100 Pennsylvania Ave NW, Washington, DC",
			"--output=json",
			"--units=km",
			"--stores=testdata/stores.csv",
		}, out)

		require.NoError(t, err)
		require.False(t, shouldExit)
		assert.Equal(t, "1100 Pennsylvania Ave NW, Washington, DC", opts.Address)
		assert.Equal(t, report.JSON, opts.Format)
		assert.Equal(t, geo.Kilometers, opts.Unit)
		assert.Equal(t, "testdata/stores.csv", opts.StoresPath)
		assert.Equal(t, "1100 Pennsylvania Ave NW, Washington, DC", opts.Query())
	})

	t.Run("help requested", func(t *testing.T) {
		out := &bytes.Buffer{}

		opts, shouldExit, err := cli.Parse([]string{"-h"}, out)

		require.NoError(t, err)
		require.True(t, shouldExit)
		require.Nil(t, opts)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("zip and address together", func(t *testing.T) {
		out := &bytes.Buffer{}

		_, _, err := cli.Parse([]string{"--zip=27513", "--address=somewhere"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, out.String(), "exactly one of --zip or --address")
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("neither zip nor address", func(t *testing.T) {
		out := &bytes.Buffer{}

		_, _, err := cli.Parse([]string{"--output=json"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, out.String(), "exactly one of --zip or --address")
	})

	t.Run("invalid output format", func(t *testing.T) {
		out := &bytes.Buffer{}

		_, _, err := cli.Parse([]string{"--zip=27513", "--output=yaml"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "must be 'text' or 'json'")
	})

	t.Run("invalid units", func(t *testing.T) {
		out := &bytes.Buffer{}

		_, _, err := cli.Parse([]string{"--zip=27513", "--units=leagues"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "must be 'mi' or 'km'")
	})

	t.Run("unknown flag", func(t *testing.T) {
		out := &bytes.Buffer{}

		_, _, err := cli.Parse([]string{"--nearest=true"}, out)

		var exitErr *cli.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, out.String(), "flag provided but not defined")
	})
}
