package cli

import (
	"fmt"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/catalogfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newValidateCommand(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.hcl>",
		Short: "Check an HCL catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := catalogfile.Load(args[0])
			if err != nil {
				s.logger.Debug("catalog file rejected", zap.String("path", args[0]), zap.Error(err))
				return err
			}
			stats := catalog.Summarize(r.Categories(), r.Pages())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d categories, %d pages\n",
				okStyle.Render("ok"), args[0], stats.CategoryCount, stats.PageCount)
			return err
		},
	}
}

func newExportCommand(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to stdout as yaml, json or hcl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := catalogfile.Format(s.v.GetString(keyFormat))
			if !format.IsValid() {
				return fmt.Errorf("unsupported export format: %s", format)
			}
			r, err := s.registry()
			if err != nil {
				return err
			}
			return catalogfile.Export(cmd.OutOrStdout(), r, format)
		},
	}
	cmd.Flags().String(keyFormat, string(catalogfile.FormatYAML), "output format (yaml, json, hcl)")
	_ = s.v.BindPFlag(keyFormat, cmd.Flags().Lookup(keyFormat))
	return cmd
}
