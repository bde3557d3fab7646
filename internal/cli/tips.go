package cli

import (
	"encoding/json"
	"fmt"

	"github.com/gamenative/gamenative-tui/internal/emoji"
	"github.com/gamenative/gamenative-tui/internal/tips"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTipsCommand() *cobra.Command {
	var tipsFile string

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "List the boot splash tips",
		Long: `List the tips the boot splash rotates through, in rotation order.

Without --tips the configured tips file is used, or the built-in tips when
none is configured. Supports --output text, json and yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tipsFile == "" {
				tipsFile = getGlobalConfig().Splash.TipsFile
			}

			list := tips.DefaultTips()
			if tipsFile != "" {
				loaded, err := tips.LoadFile(tipsFile)
				if err != nil {
					return err
				}
				list = loaded
			}

			out := cmd.OutOrStdout()
			switch outputFmt {
			case "json":
				data, err := json.MarshalIndent(tips.File{Tips: list}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal tips to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "yaml":
				data, err := yaml.Marshal(tips.File{Tips: list})
				if err != nil {
					return fmt.Errorf("failed to marshal tips to YAML: %w", err)
				}
				fmt.Fprint(out, string(data))
			case "", "text":
				fmt.Fprintf(out, "%s %d tips\n\n", emoji.GetEmoji("tip"), len(list))
				for i, tip := range list {
					fmt.Fprintf(out, "%2d. %s\n", i+1, tip)
				}
			default:
				return fmt.Errorf("unsupported format: %s (use text, json or yaml)", outputFmt)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tipsFile, "tips", "", "YAML file with the tips to list")
	return cmd
}
