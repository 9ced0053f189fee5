package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rekordcrate/internal/rberr"
	"rekordcrate/setting"
)

var settingDialectFlag string

// settingDialectByFilename mirrors the reference implementation's
// filename-keyed dispatch, since the payload dialect cannot always be
// told apart from its on-disk byte length alone.
var settingDialectByFilename = map[string]setting.Dialect{
	"DEVSETTING.DAT":   setting.DialectDevSetting,
	"DJMMYSETTING.DAT": setting.DialectDJMMySetting,
	"MYSETTING.DAT":    setting.DialectMySetting,
	"MYSETTING2.DAT":   setting.DialectMySetting2,
}

var dumpSettingCmd = &cobra.Command{
	Use:                   "dump-setting FILE",
	Short:                 "Dump a Rekordbox *SETTING.DAT preference file",
	Long:                  `Parse a DEVSETTING.DAT/DJMMYSETTING.DAT/MYSETTING.DAT/MYSETTING2.DAT file and print its fields.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(); err != nil {
			return err
		}
		filename := args[0]

		dialect, err := resolveSettingDialect(filename, settingDialectFlag)
		if err != nil {
			return err
		}

		f, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer f.Close()

		s, err := setting.Open(f, dialect)
		if err != nil {
			if s == nil || !rberr.Is(err, rberr.KindChecksumMismatch) {
				return err
			}
			fmt.Fprintln(os.Stderr, "warning:", err)
		}

		return printResult(s)
	},
}

func resolveSettingDialect(filename, override string) (setting.Dialect, error) {
	switch strings.ToUpper(override) {
	case "DEVSETTING":
		return setting.DialectDevSetting, nil
	case "DJMMYSETTING":
		return setting.DialectDJMMySetting, nil
	case "MYSETTING":
		return setting.DialectMySetting, nil
	case "MYSETTING2":
		return setting.DialectMySetting2, nil
	case "":
		// fall through to filename-based lookup below
	default:
		return 0, fmt.Errorf("unknown --dialect %q", override)
	}

	base := strings.ToUpper(filepath.Base(filename))
	if d, ok := settingDialectByFilename[base]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("cannot infer setting dialect from filename %q, pass --dialect", filename)
}

func init() {
	dumpSettingCmd.Flags().StringVar(&settingDialectFlag, "dialect", "", `Dialect, one of: DEVSETTING, DJMMYSETTING, MYSETTING, MYSETTING2; default: guessed from filename`)
	rootCmd.AddCommand(dumpSettingCmd)
}
