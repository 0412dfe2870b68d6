package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/starter/internal/app"
	"go.trai.ch/starter/internal/ui/style"
)

func (c *CLI) newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the post-processing rules in the order they run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := c.app.Rules(metadataFlag(cmd))
			if err != nil {
				return err
			}
			for _, info := range infos {
				printRule(cmd.OutOrStdout(), info)
			}
			return nil
		},
	}
}

func printRule(w io.Writer, info app.RuleInfo) {
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Muted.Render(style.Dot), style.Heading.Render(info.Name))
	if len(info.Triggers) > 0 {
		_, _ = fmt.Fprintf(w, "    %s %s\n", style.Muted.Render("when:"), strings.Join(info.Triggers, ", "))
	}
	if info.MinVersion != "" {
		_, _ = fmt.Fprintf(w, "    %s %s\n", style.Muted.Render("since:"), info.MinVersion)
	}
	if info.Implies != nil {
		_, _ = fmt.Fprintf(w, "    %s %s %s (%s)\n",
			style.Muted.Render("adds:"),
			style.Added.Render(style.Plus+" "+info.Implies.ID),
			info.Implies.Coordinates(),
			info.Implies.Scope,
		)
	}
}
