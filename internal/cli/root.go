// lfenv - LS_COLORS / LF_COLORS / LF_ICONS generator
// Author: lfenv contributors
// Source: https://github.com/lfenv/lfenv

// Package cli provides the Cobra-based commands for lfenv: the root command
// that generates the export statements, plus check and version.
package cli

import (
	"context"

	"github.com/lfenv/lfenv/internal/config"
	"github.com/lfenv/lfenv/internal/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lfenv",
	Short: "Generate LS_COLORS, LF_COLORS and LF_ICONS from a JSON config",
	Long: `lfenv reads a JSON file mapping file patterns to icons, colors and
decorations, and prints shell export statements for LF_ICONS, LS_COLORS and
LF_COLORS. When the config names an "output" file, the statements are written
there instead.`,
	Example: `  # Print exports for ./config.json
  lfenv

  # Load them into the current shell
  eval "$(lfenv -c ~/.config/lfenv/config.json -o -)"

  # Write to a file regardless of the config
  lfenv -o ~/.config/lf/colors.sh`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "Path to config file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringP("output", "o", "", `Output file, overrides the config ("-" for stdout)`)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	opts := generateOptionsFromFlags(cmd)

	ctx, done, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer done()

	return Generate(ctx, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// commandContext returns the command context with a logger attached.
// The returned func flushes the logger.
func commandContext(cmd *cobra.Command) (context.Context, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logger.New(debug)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewContext(ctx, log), func() { _ = log.Sync() }, nil
}
