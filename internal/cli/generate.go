package cli

import (
	"context"
	"io"

	"github.com/lfenv/lfenv/internal/config"
	"github.com/lfenv/lfenv/internal/emit"
	"github.com/lfenv/lfenv/internal/listing"
	"github.com/lfenv/lfenv/internal/logger"
	"github.com/lfenv/lfenv/internal/translate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// stdoutOutput forces output to stdout even when the config names a file.
const stdoutOutput = "-"

// GenerateOptions holds the inputs of a generate run.
type GenerateOptions struct {
	ConfigPath string
	// Output overrides the config's output when non-empty.
	Output string
}

func generateOptionsFromFlags(cmd *cobra.Command) GenerateOptions {
	configPath, _ := cmd.Flags().GetString("config")
	output, _ := cmd.Flags().GetString("output")
	return GenerateOptions{ConfigPath: configPath, Output: output}
}

// Generate loads the config, translates it, and writes the export
// statements. Unsupported-key warnings go to stderr.
func Generate(ctx context.Context, opts GenerateOptions, stdout, stderr io.Writer) error {
	log := logger.L(ctx)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	log.Debug("config loaded", zap.String("path", opts.ConfigPath), zap.Int("datapoints", len(cfg.Data)))

	enc, err := translate.Translate(ctx, cfg, listing.NewValidator(stderr))
	if err != nil {
		return err
	}

	text := emit.EnvVars(enc)
	path := resolveOutput(cfg, opts.Output)
	log.Debug("writing exports", zap.Stringp("output", path), zap.Int("bytes", len(text)))

	return emit.Write(path, text, stdout)
}

// resolveOutput picks the destination: the flag wins over the config,
// and nil means stdout.
func resolveOutput(cfg *config.Configuration, flag string) *string {
	switch flag {
	case "":
		if path, ok := cfg.OutputPath(); ok {
			return &path
		}
		return nil
	case stdoutOutput:
		return nil
	default:
		return &flag
	}
}
