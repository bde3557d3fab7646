package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gamenative/gamenative-tui/internal/formatter"
	"github.com/gamenative/gamenative-tui/internal/supporters"
	"github.com/gamenative/gamenative-tui/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	supportersNoTUI      bool
	supportersOutputFile string
)

func newSupportersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "supporters",
		Aliases: []string{"hall-of-fame", "hof"},
		Short:   "Show the Hall of Fame",
		Long: `Fetch the Ko-fi supporter list from Supabase and show it.

On a terminal this opens the Hall of Fame dialog: members first, then one-off
supporters, each sorted by total contributed. With --no-tui, a non-text
--output, or when stdout is not a terminal the list is printed instead.

The Supabase project is read from the config file or from SUPABASE_URL and
SUPABASE_ANON_KEY.`,
		Example: `  gamenative supporters
  gamenative supporters --no-tui
  gamenative supporters -o json --output-file supporters.json`,
		Args: cobra.NoArgs,
		RunE: runSupporters,
	}

	cmd.Flags().BoolVar(&supportersNoTUI, "no-tui", false, "print the list instead of opening the dialog")
	cmd.Flags().StringVar(&supportersOutputFile, "output-file", "", "write the formatted list to a file")

	return cmd
}

func runSupporters(cmd *cobra.Command, args []string) error {
	cfg := getGlobalConfig()
	log := newLogger("supporters")

	client, err := supporters.NewClient(cfg.Supabase.ClientConfig(), log)
	if err != nil {
		return err
	}

	if useSupportersTUI(cmd) {
		restore, err := redirectLogs(log)
		if err != nil {
			return err
		}
		defer restore()

		if !ui.SetThemeByName(cfg.Splash.Theme) {
			log.Warn("unknown theme %q, using default", cfg.Splash.Theme)
		}
		return ui.RunSupportersDialog(client, ui.WithDialogLogger(log))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return printSupporters(ctx, cmd.OutOrStdout(), client)
}

// useSupportersTUI decides between the dialog and printed output
func useSupportersTUI(cmd *cobra.Command) bool {
	if supportersNoTUI || supportersOutputFile != "" {
		return false
	}
	if outputFmt != "" && outputFmt != formatter.FormatText {
		return false
	}
	if cmd.OutOrStdout() != os.Stdout {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printSupporters fetches once and writes the formatted result
func printSupporters(ctx context.Context, stdout io.Writer, fetcher supporters.Fetcher) error {
	f, err := formatter.New(getOutputFormat(), formatter.Options{
		Color: !noColor && supportersOutputFile == "" && term.IsTerminal(int(os.Stdout.Fd())),
		Emoji: !isEmojiDisabled(),
	})
	if err != nil {
		return err
	}

	records, err := fetcher.FetchSupporters(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch supporters: %w", err)
	}

	data, err := f.Format(supporters.Partition(records))
	if err != nil {
		return fmt.Errorf("failed to format supporters: %w", err)
	}

	if supportersOutputFile != "" {
		if err := os.WriteFile(supportersOutputFile, data, 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Wrote supporters to %s\n", supportersOutputFile)
		}
		return nil
	}

	_, err = stdout.Write(data)
	return err
}
