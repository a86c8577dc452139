package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tidygl-dev/tidygl/internal/bsm"
	"github.com/tidygl-dev/tidygl/internal/graphwalk"
	"github.com/tidygl-dev/tidygl/internal/lhm"
	"github.com/tidygl-dev/tidygl/internal/logging"
)

func newGraphwalkCommand() *cobra.Command {
	var baseDir string
	var root string
	var out string
	var encoding string
	var dnm bool
	var extensions []string
	var debug, trace bool

	cmd := &cobra.Command{
		Use:   "graphwalk <bsm-csv>",
		Short: "Transform a Business Semantic Model into a Logical Hierarchical Model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(debug, trace)

			resolve := func(path string) string {
				if baseDir == "" || filepath.IsAbs(path) {
					return path
				}
				return filepath.Join(baseDir, path)
			}

			m, err := bsm.LoadFile(resolve(args[0]), encoding)
			if err != nil {
				return err
			}
			for _, ext := range extensions {
				extModel, err := bsm.LoadFile(resolve(ext), encoding)
				if err != nil {
					return err
				}
				m.Merge(extModel)
				log.Debug().Str("file", ext).Msg("extension model merged")
			}
			if err := m.Validate(); err != nil {
				return err
			}

			rows, err := graphwalk.Walk(m, graphwalk.Options{Root: root, DNM: dnm})
			if err != nil {
				return err
			}
			log.Info().Int("rows", len(rows)).Str("root", root).Msg("graph walk finished")

			if out == "" {
				out = "lhm.csv"
			}
			if err := lhm.WriteFile(resolve(out), rows); err != nil {
				return err
			}
			log.Info().Str("file", out).Msg("LHM written")
			return nil
		},
	}

	cmd.Flags().StringVar(&baseDir, "base_dir", "", "directory input files are relative to")
	cmd.Flags().StringVar(&root, "root", "", "class term to start the walk from (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output LHM CSV (default lhm.csv)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "input text encoding (utf-8, cp932)")
	cmd.Flags().BoolVar(&dnm, "option", false, "enable decoupled navigation mode")
	cmd.Flags().StringArrayVar(&extensions, "file", nil, "extension model CSV (repeatable)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&trace, "trace", false, "enable trace logging")
	_ = cmd.MarkFlagRequired("root")

	return cmd
}
