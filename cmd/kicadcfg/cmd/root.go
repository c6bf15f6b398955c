package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicadcfg/internal/log"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/cfgcheck"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/libtable"
)

var (
	// Global flags
	allMessages bool

	// problems counts error diagnostics from the last check; Execute
	// turns it into the exit status.
	problems int
)

var rootCmd = &cobra.Command{
	Use:   "kicadcfg [directory]",
	Short: "Check a user's KiCad 6 configuration and emit diagnostics",
	Long: `kicadcfg validates a KiCad 6 configuration directory: it reads the
environment variables from kicad_common.json, then checks every library in
sym-lib-table and fp-lib-table, substituting ${VAR} references and verifying
the referenced file or directory exists on disk.

Examples:
  kicadcfg                         # check the default configuration directory
  kicadcfg ~/.config/kicad/6.0     # check a specific directory
  kicadcfg -a                      # also report libraries that were found`,
	Version:      "0.9.0",
	Args:         cobra.MaximumNArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

// Execute runs the root command. The process exits nonzero when any
// error diagnostic was emitted, even though per-record errors never
// abort the check itself.
func Execute() {
	log.Init()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if problems > 0 {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&allMessages, "all", "a", false,
		"show all diagnostics for tables (default: errors only)")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func runCheck(cmd *cobra.Command, args []string) error {
	platform, err := cfgcheck.Detect()
	if err != nil {
		return err
	}

	var cfgdir string
	if len(args) > 0 {
		cfgdir = args[0]
	} else {
		cfgdir, err = platform.ConfigDir()
		if err != nil {
			return err
		}
	}

	symbols, footprints := platform.LibraryDefaults()
	tables := []libtable.Spec{
		libtable.SymbolTable(symbols),
		libtable.FootprintTable(footprints),
	}

	checker := cfgcheck.New(cfgcheck.Options{
		AllMessages: allMessages,
		Out:         cmd.OutOrStdout(),
	})
	problems = checker.Check(cfgdir, tables)

	return nil
}
