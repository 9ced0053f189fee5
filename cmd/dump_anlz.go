package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"rekordcrate/anlz"
)

var dumpAnlzCmd = &cobra.Command{
	Use:                   "dump-anlz FILE",
	Short:                 "Dump a Rekordbox anlz analysis file",
	Long:                  `Parse an ANLZ0000.DAT/.EXT/.2EX analysis file and print its sections.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		file, err := anlz.Open(f)
		if err != nil {
			return err
		}

		return printResult(file)
	},
}

func init() {
	rootCmd.AddCommand(dumpAnlzCmd)
}
