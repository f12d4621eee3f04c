// Package cli parses and validates the find-store command line.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/nearstore/find-store/internal/geo"
	"github.com/nearstore/find-store/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the validated command line options for a single lookup.
type Options struct {
	Zip        string        // Zip is the postal code to look up.
	Address    string        // Address is the free-form address to look up.
	Format     report.Format // Format selects text or JSON output.
	Unit       geo.Unit      // Unit selects miles or kilometers.
	StoresPath string        // StoresPath optionally overrides the built-in store catalog.
}

// Query returns the lookup query: the zip code when one was given,
// otherwise the address.
func (o *Options) Query() string {
	if o.Zip != "" {
		return o.Zip
	}

	return o.Address
}

// Parse processes command-line arguments. It returns the populated Options,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Diagnostics and usage text are written to output.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("find-store", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
find-store - locate the nearest store to a zip code or address.

Usage:
  find-store --zip=<zip> [options]
  find-store --address="<address>" [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	zipFlag := flagSet.String("zip", "", "Find the nearest store to this zip code.")
	addressFlag := flagSet.String("address", "", "Find the nearest store to this address.")
	outputFlag := flagSet.String("output", "text", "Output format. Options: 'text' or 'json'.")
	unitsFlag := flagSet.String("units", "mi", "Distance units. Options: 'mi' or 'km'.")
	storesFlag := flagSet.String("stores", "", "Path to a store catalog CSV replacing the built-in one.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		// The flag package has already written the diagnostic and usage text.
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if (*zipFlag == "") == (*addressFlag == "") {
		return nil, false, usageError(flagSet, output, "exactly one of --zip or --address must be given")
	}

	format, err := report.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, usageError(flagSet, output, err.Error())
	}

	unit, err := geo.ParseUnit(*unitsFlag)
	if err != nil {
		return nil, false, usageError(flagSet, output, err.Error())
	}

	return &Options{
		Zip:        *zipFlag,
		Address:    *addressFlag,
		Format:     format,
		Unit:       unit,
		StoresPath: *storesFlag,
	}, false, nil
}

// usageError writes the diagnostic and usage text the way the flag package
// does for its own errors, and wraps the message in an ExitError.
func usageError(flagSet *flag.FlagSet, output io.Writer, message string) error {
	fmt.Fprintln(output, message)
	flagSet.Usage()

	return &ExitError{Code: 2, Message: message}
}
