package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lfenv/lfenv/internal/config"
	"github.com/lfenv/lfenv/internal/emit"
	"github.com/lfenv/lfenv/internal/listing"
	"github.com/lfenv/lfenv/internal/translate"
	"github.com/spf13/cobra"
)

var checkStrict bool

// checkCmd validates a config without writing anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and summarize the generated variables",
	Long: `Load and translate the config without writing any output.
Reports how many entries each variable would receive and which patterns
GNU ls does not support.`,
	Example: `  # Validate ./config.json
  lfenv check

  # Fail when any pattern is unsupported by GNU ls
  lfenv check --strict -c theme.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Treat unsupported LS_COLORS keys as an error")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	ctx, done, err := commandContext(cmd)
	if err != nil {
		return err
	}
	defer done()

	return Check(ctx, configPath, checkStrict, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Check loads and translates the config at configPath and prints a summary
// to stdout. With strict set, unsupported keys make it fail.
func Check(ctx context.Context, configPath string, strict bool, stdout, stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	enc, err := translate.Translate(ctx, cfg, listing.NewValidator(stderr))
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, formatCheckSummary(configPath, len(cfg.Data), enc))

	if strict && len(enc.Unsupported) > 0 {
		return NewExitError(ExitUnsupportedKeys,
			fmt.Errorf("%d pattern(s) not supported in GNU ls: %s",
				len(enc.Unsupported), strings.Join(enc.Unsupported, ", ")))
	}
	return nil
}

// formatCheckSummary renders the check report.
func formatCheckSummary(configPath string, datapoints int, enc *translate.Encoded) string {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	icons, lsColors, lfColors := enc.Counts()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d datapoint(s)\n", green("✓"), configPath, datapoints)
	for _, row := range []struct {
		name  string
		count int
	}{
		{emit.VarLFIcons, icons},
		{emit.VarLSColors, lsColors},
		{emit.VarLFColors, lfColors},
	} {
		fmt.Fprintf(&b, "  %-10s %s\n", row.name, dim(fmt.Sprintf("%d entries", row.count)))
	}
	if len(enc.Unsupported) > 0 {
		fmt.Fprintf(&b, "%s %d pattern(s) skipped for %s: %s\n",
			yellow("!"), len(enc.Unsupported), emit.VarLSColors, strings.Join(enc.Unsupported, ", "))
	}
	return b.String()
}
