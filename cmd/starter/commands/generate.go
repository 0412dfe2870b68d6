package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/starter/internal/adapters/render"
	"go.trai.ch/starter/internal/app"
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/ui/style"
	"go.trai.ch/zerr"
)

const outputFilePerm = 0o644

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Resolve dependencies for one or more projects and render their build files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			bootVersion, _ := cmd.Flags().GetString("boot-version")
			deps, _ := cmd.Flags().GetStringSlice("dependencies")
			requestFiles, _ := cmd.Flags().GetStringArray("request")
			format, _ := cmd.Flags().GetString("format")
			outputPath, _ := cmd.Flags().GetString("output")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			reqs, err := c.app.LoadRequests(requestFiles)
			if err != nil {
				return err
			}
			if len(deps) > 0 || bootVersion != "" {
				reqs = append(reqs, domain.NewProjectRequest("", name, bootVersion, deps))
			}
			if len(reqs) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			var out io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to open output file"), "path", outputPath)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			results, err := c.app.GenerateAll(cmd.Context(), reqs, app.GenerateOptions{
				MetadataPath: metadataFlag(cmd),
				Format:       format,
				Output:       out,
				NoCache:      noCache,
			})
			if err != nil {
				return err
			}

			for _, res := range results {
				printSummary(cmd.ErrOrStderr(), res)
			}
			return nil
		},
	}
	cmd.Flags().StringP("name", "n", "", "Project name")
	cmd.Flags().StringP("boot-version", "b", "", "Boot version (defaults to the catalog version)")
	cmd.Flags().StringSliceP("dependencies", "d", nil, "Comma-separated dependency ids")
	cmd.Flags().StringArrayP("request", "r", nil, "Request file (.yaml, .yml or .toml), repeatable")
	cmd.Flags().StringP("format", "f", render.FormatMaven, "Build file format: maven or gradle")
	cmd.Flags().StringP("output", "o", "", "Write build files to this path instead of stdout")
	cmd.Flags().Bool("no-cache", false, "Bypass stored results")
	return cmd
}

func printSummary(w io.Writer, res *domain.GenerationResult) {
	suffix := ""
	if res.Cached {
		suffix = style.Muted.Render(" (cached)")
	}
	_, _ = fmt.Fprintf(w, "%s %s %s %d dependencies%s\n",
		style.Added.Render(style.Check),
		style.Heading.Render(res.Name),
		style.Muted.Render(res.BootVersion),
		len(res.Dependencies),
		suffix,
	)
}
