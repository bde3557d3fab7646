package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gamenative/gamenative-tui/internal/emoji"
	"github.com/gamenative/gamenative-tui/internal/versions"
	"github.com/spf13/cobra"
	"github.com/yildizm/go-termfmt"
)

func newVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "versions [component]",
		Short: "Show default component versions",
		Long: `Show the component versions a new container starts with.

Pass a component name (for example dxvk or box64) to print just its version.`,
		Example: `  gamenative versions
  gamenative versions dxvk
  gamenative versions -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				v, ok := versions.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown component: %s", args[0])
				}
				fmt.Fprintln(out, v)
				return nil
			}

			all := versions.All()

			switch outputFmt {
			case "json":
				data, err := json.MarshalIndent(struct {
					Components []versions.Component `json:"components"`
					SteamType  string               `json:"steam_type"`
				}{all, versions.DefaultSteamType}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal versions to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "", "text":
				opts := termfmt.DefaultOptions()
				opts.Color = !noColor
				opts.Emoji = !isEmojiDisabled()

				items := make([]termfmt.TreeItem, 0, len(all)+1)
				for _, c := range all {
					items = append(items, termfmt.TreeItem{Label: c.Name, Value: c.Version})
				}
				items = append(items, termfmt.TreeItem{Label: "steam type", Value: versions.DefaultSteamType, Last: true})

				fmt.Fprintf(out, "%s Default component versions\n", emoji.GetEmoji("package"))
				fmt.Fprintln(out, strings.TrimRight(termfmt.TreeViewWithOptions(items, opts), "\n"))
			default:
				return fmt.Errorf("unsupported format: %s (use text or json)", outputFmt)
			}
			return nil
		},
	}
}
