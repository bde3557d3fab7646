package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamenative/gamenative-tui/internal/bootwatch"
	"github.com/gamenative/gamenative-tui/internal/emoji"
	"github.com/gamenative/gamenative-tui/internal/logger"
	"github.com/gamenative/gamenative-tui/internal/tips"
	"github.com/gamenative/gamenative-tui/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	bootReadyFile string
	bootTipsFile  string
	bootInterval  time.Duration
	bootPlain     bool
	bootTheme     string
)

func newBootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Show the boot splash until the container is ready",
		Long: `Show the boot splash while a container starts.

A random tip is shown first and the next one follows every interval,
wrapping around at the end of the list. The splash closes when the ready
file appears or when you press q.

--plain prints each tip on its own line instead of drawing the splash; it is
also used when stdout is not a terminal.`,
		Example: `  gamenative boot --ready-file /tmp/container.ready
  gamenative boot --plain --interval 2s
  gamenative boot --tips ./my-tips.yaml --theme high-contrast`,
		Args: cobra.NoArgs,
		RunE: runBoot,
	}

	cmd.Flags().StringVar(&bootReadyFile, "ready-file", "", "close the splash once this file exists")
	cmd.Flags().StringVar(&bootTipsFile, "tips", "", "YAML file with the tips to show")
	cmd.Flags().DurationVar(&bootInterval, "interval", 0, "time each tip is shown (default 4s)")
	cmd.Flags().BoolVar(&bootPlain, "plain", false, "print tips line by line")
	cmd.Flags().StringVar(&bootTheme, "theme", "", "splash theme (default, high-contrast, minimal)")

	return cmd
}

// bootSettings resolves flags over the splash config
type bootSettings struct {
	tips      []string
	interval  time.Duration
	readyFile string
	theme     string
}

func resolveBootSettings() (*bootSettings, error) {
	cfg := getGlobalConfig().Splash

	s := &bootSettings{
		interval:  cfg.TipInterval,
		readyFile: cfg.ReadyFile,
		theme:     cfg.Theme,
	}
	if bootInterval > 0 {
		s.interval = bootInterval
	}
	if s.interval <= 0 {
		s.interval = tips.DefaultInterval
	}
	if bootReadyFile != "" {
		s.readyFile = bootReadyFile
	}
	if bootTheme != "" {
		s.theme = bootTheme
	}

	tipsFile := cfg.TipsFile
	if bootTipsFile != "" {
		tipsFile = bootTipsFile
	}
	if tipsFile == "" {
		s.tips = tips.DefaultTips()
		return s, nil
	}

	loaded, err := tips.LoadFile(tipsFile)
	if err != nil {
		return nil, err
	}
	s.tips = loaded
	return s, nil
}

func runBoot(cmd *cobra.Command, args []string) error {
	settings, err := resolveBootSettings()
	if err != nil {
		return err
	}

	log := newLogger("boot")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var ready <-chan struct{}
	if settings.readyFile != "" {
		ready, err = bootwatch.Watch(ctx, settings.readyFile, log)
		if err != nil {
			return err
		}
	}

	rotator := tips.NewRotator(settings.tips, nil)
	log.DebugWithFields("starting splash", []logger.Field{
		logger.Count(rotator.Len()),
		logger.Duration(settings.interval),
		logger.F("ready_file", settings.readyFile),
	})

	if bootPlain || cmd.OutOrStdout() != os.Stdout || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlainBoot(ctx, cmd.OutOrStdout(), rotator, settings.interval, ready)
	}

	restore, err := redirectLogs(log)
	if err != nil {
		return err
	}
	defer restore()

	if !ui.SetThemeByName(settings.theme) {
		log.Warn("unknown theme %q, using default", settings.theme)
	}

	return ui.RunBootSplash(rotator, ready,
		ui.WithInterval(settings.interval),
		ui.WithBootCompleted(func() { log.Info("container ready") }),
	)
}

// runPlainBoot prints the current tip and each following one until ready
// fires or ctx ends
func runPlainBoot(ctx context.Context, out io.Writer, rotator *tips.Rotator, interval time.Duration, ready <-chan struct{}) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if ready != nil {
		go func() {
			select {
			case <-ready:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	symbol := emoji.GetEmoji("tip")
	printTip := func(tip string) {
		fmt.Fprintf(out, "%s %s\n", symbol, tip)
	}

	fmt.Fprintln(out, "Booting...")
	if tip := rotator.Current(); tip != "" {
		printTip(tip)
	}

	err := tips.Run(ctx, interval, rotator, func(_ int, tip string) { printTip(tip) })
	if rotator.Len() == 0 {
		// nothing to rotate; still wait for the container
		<-ctx.Done()
	}

	if ready != nil {
		select {
		case <-ready:
			fmt.Fprintf(out, "%s Ready\n", emoji.GetEmoji("success"))
		default:
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
