package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rekordcrate/pdb"
)

var pdbExt bool

// pdbDump is the shape printed by dump-pdb: the header plus every
// populated table's rows, since pdb.Database itself loads pages lazily
// and keeps its cache unexported.
type pdbDump struct {
	Header pdb.Header
	Tables []pdbTableDump
}

type pdbTableDump struct {
	Type pdb.PageType
	Rows []pdb.Row
}

var dumpPdbCmd = &cobra.Command{
	Use:                   "dump-pdb FILE",
	Short:                 "Dump a Rekordbox pdb track database",
	Long:                  `Parse an export.pdb or exportExt.pdb track database and print its tables.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(); err != nil {
			return err
		}
		filename := args[0]

		f, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer f.Close()

		dbType := pdb.DatabaseTypePlain
		if pdbExt || strings.Contains(strings.ToLower(filename), "ext") {
			dbType = pdb.DatabaseTypeExt
		}

		db, err := pdb.Open(f, dbType)
		if err != nil {
			return err
		}

		header := db.Header()
		dump := pdbDump{Header: header}
		for _, t := range header.Tables {
			rows, err := db.Rows(t)
			if err != nil {
				return err
			}
			dump.Tables = append(dump.Tables, pdbTableDump{Type: t.Type, Rows: rows})
		}

		return printResult(dump)
	},
}

func init() {
	dumpPdbCmd.Flags().BoolVar(&pdbExt, "ext", false, `Force the exportExt.pdb dialect, default: guessed from filename`)
	rootCmd.AddCommand(dumpPdbCmd)
}
