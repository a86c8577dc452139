package commands

import (
	"github.com/spf13/cobra"

	"github.com/tidygl-dev/tidygl/internal/lhm"
	"github.com/tidygl-dev/tidygl/internal/logging"
	"github.com/tidygl-dev/tidygl/internal/taxonomy"
)

func newTaxonomyCommand() *cobra.Command {
	var cfg taxonomy.Config
	var encoding string
	var debug, trace bool

	cmd := &cobra.Command{
		Use:   "taxonomy <lhm-csv>",
		Short: "Emit a Dimensional-XBRL taxonomy and xBRL-CSV metadata from an LHM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(debug, trace)

			rows, err := lhm.ReadFile(args[0], encoding)
			if err != nil {
				return err
			}
			log.Info().Int("rows", len(rows)).Msg("LHM loaded")

			emitter, err := taxonomy.New(cfg, rows)
			if err != nil {
				return err
			}
			if err := emitter.Emit(); err != nil {
				return err
			}
			log.Info().Str("dir", cfg.OutDir).Msg("taxonomy emitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.OutDir, "base_dir", "taxonomy", "output taxonomy directory")
	cmd.Flags().StringVar(&cfg.Namespace, "namespace", "", "target namespace URI")
	cmd.Flags().StringVar(&cfg.Prefix, "prefix", "gl", "namespace prefix for concepts")
	cmd.Flags().StringVar(&cfg.Version, "version", "", "version in emitted file names")
	cmd.Flags().StringVar(&cfg.Lang, "lang", "ja", "local label language")
	cmd.Flags().StringVar(&cfg.Currency, "currency", "JPY", "unit for monetary columns")
	cmd.Flags().StringVar(&cfg.TableRoot, "table_root", "", "class anchoring the xBRL-CSV table (default: LHM root)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "input text encoding (utf-8, cp932)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging")

	return cmd
}
