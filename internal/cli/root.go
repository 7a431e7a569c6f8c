// Package cli implements catalogctl, the command line front end of the catalog.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shaibs3/pagecatalog/internal/catalog"
	"github.com/shaibs3/pagecatalog/internal/catalogfile"
	"github.com/shaibs3/pagecatalog/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	keyCatalog  = "catalog"
	keyLogLevel = "log_level"
	keyOut      = "out"
	keyFormat   = "format"
)

type state struct {
	v       *viper.Viper
	cfgFile string
	logger  *zap.Logger
}

// NewRootCommand builds the catalogctl command tree
func NewRootCommand() *cobra.Command {
	s := &state{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect and publish the learning sample catalog",
		Long: `catalogctl works with the catalog of Next.js learning samples.

By default it uses the built-in catalog. Pass --catalog to work with an
HCL catalog file instead.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&s.cfgFile, "config", "", "config file (default is ./catalogctl.yaml)")
	root.PersistentFlags().String(keyCatalog, "", "HCL catalog file to use instead of the built-in catalog")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = s.v.BindPFlag(keyCatalog, root.PersistentFlags().Lookup(keyCatalog))
	_ = s.v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newCategoriesCommand(s),
		newListCommand(s),
		newShowCommand(s),
		newValidateCommand(s),
		newExportCommand(s),
		newBuildCommand(s),
	)
	return root
}

func (s *state) initialize(cmd *cobra.Command) error {
	v := s.v
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyOut, "public")
	v.SetDefault(keyFormat, string(catalogfile.FormatYAML))

	if s.cfgFile != "" {
		v.SetConfigFile(s.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("catalogctl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || s.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	l, err := logger.NewLogger("development", v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	s.logger = l.Named("catalogctl")
	if used := v.ConfigFileUsed(); used != "" {
		s.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// registry is the catalog every command works on
func (s *state) registry() (*catalog.Registry, error) {
	path := s.v.GetString(keyCatalog)
	if path == "" {
		return catalog.Default(), nil
	}
	s.logger.Debug("loading catalog file", zap.String("path", path))
	return catalogfile.Load(path)
}
