package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// outputFormat is bound to the persistent --format flag shared by every
// dump subcommand.
var outputFormat string

const (
	formatDebug = "debug"
	formatJSON  = "json"
)

var rootCmd = &cobra.Command{
	Use:   "rekordcrate",
	Short: "Read and write Pioneer/AlphaTheta Rekordbox export files",
	Long: `rekordcrate parses and serializes the binary files found on a
Rekordbox USB/SD export: the pdb track database, anlz analysis files,
and *SETTING.DAT preference files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", formatDebug, `Output format, one of: "debug", "json"`)
}

// Execute runs the root command, exiting the process with a non-zero
// status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateFormat() error {
	switch outputFormat {
	case formatDebug, formatJSON:
		return nil
	default:
		return fmt.Errorf(`unknown --format %q, want "debug" or "json"`, outputFormat)
	}
}

func printResult(v any) error {
	if outputFormat == formatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	fmt.Printf("%+v\n", v)
	return nil
}
