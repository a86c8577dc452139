package commands

import (
	"github.com/spf13/cobra"

	"github.com/tidygl-dev/tidygl/internal/config"
	"github.com/tidygl-dev/tidygl/internal/ledger"
	"github.com/tidygl-dev/tidygl/internal/logging"
)

func newLedgerCommand() *cobra.Command {
	var baseDir string
	var outDir string
	var encoding string
	var lang string
	var debug, trace bool

	cmd := &cobra.Command{
		Use:   "ledger <parameters-file>",
		Short: "Derive the general ledger, trial balance, and BS/PL roll-ups from a tidy-GL CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.Load(args[0])
			if err != nil {
				return err
			}

			// Flags override the parameters file.
			if baseDir != "" {
				params.BaseDir = baseDir
			}
			if outDir != "" {
				params.OutDir = outDir
			}
			if encoding != "" {
				params.Encoding = encoding
			}
			if lang != "" {
				params.Lang = lang
			}

			log := logging.New(debug || params.Debug, trace || params.Trace)
			_, err = ledger.Run(params, log)
			return err
		},
	}

	cmd.Flags().StringVar(&baseDir, "base_dir", "", "directory input files are relative to")
	cmd.Flags().StringVar(&outDir, "out_dir", "", "output directory for exported CSVs")
	cmd.Flags().StringVar(&encoding, "encoding", "", "input text encoding (utf-8, cp932)")
	cmd.Flags().StringVar(&lang, "lang", "", "label language (ja, en)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging")

	return cmd
}
