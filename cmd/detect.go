package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jaredthirsk/claude-code-templates/internal/appdetect"
	"github.com/jaredthirsk/claude-code-templates/pkg/output"
	"github.com/spf13/cobra"
)

func newDetectCommand() *cobra.Command {
	detectCmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Detect the languages and frameworks used by a project.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			result := appdetect.Detect(dir)

			formatter, err := output.GetFormatter(cmd)
			if err != nil {
				return err
			}

			if formatter.Kind() != output.NoneFormat {
				return formatter.Format(result, cmd.OutOrStdout(), nil)
			}

			writeDetectReport(cmd.OutOrStdout(), result)
			return nil
		},
	}

	output.AddOutputParam(
		detectCmd,
		[]output.Format{output.JsonFormat, output.YamlFormat, output.NoneFormat},
		output.NoneFormat,
	)

	return detectCmd
}

func writeDetectReport(w io.Writer, result *appdetect.DetectionResult) {
	if result.Language == "" {
		fmt.Fprintln(w, output.WithWarningFormat("No recognizable project detected."))
		writeSummaryReport(w, result.Summary)
		return
	}

	fmt.Fprintf(w, "Language:  %s\n", output.WithSuccessFormat("%s", result.Language.Display()))
	if result.Framework != "" {
		fmt.Fprintf(w, "Framework: %s\n", output.WithSuccessFormat("%s", result.Framework))
	}

	if len(result.Languages) > 1 {
		names := make([]string, len(result.Languages))
		for i, language := range result.Languages {
			names[i] = string(language)
		}
		fmt.Fprintf(w, "Also found: %s\n", output.WithHighLightFormat(strings.Join(names, ", ")))
	}

	writeSummaryReport(w, result.Summary)
}

func writeSummaryReport(w io.Writer, summary *appdetect.Summary) {
	if summary == nil {
		return
	}

	facts := []struct {
		name    string
		present bool
	}{
		{"git repository", summary.HasGit},
		{"node_modules", summary.HasNodeModules},
		{"python virtualenv", summary.HasVenv},
		{"bundler vendor dir", summary.HasBundle},
	}

	for _, fact := range facts {
		if fact.present {
			fmt.Fprintf(w, "  %s %s\n", output.WithSuccessFormat("✓"), fact.name)
		}
	}

	if summary.GoModule != "" {
		fmt.Fprintf(w, "  module: %s\n", output.WithLinkFormat(summary.GoModule))
	}

	if summary.PackageName != "" {
		fmt.Fprintf(w, "  package: %s\n", output.WithLinkFormat(summary.PackageName))
	}

	if len(summary.ConfigFiles) > 0 {
		fmt.Fprintf(w, "  config files: %s\n", output.WithGrayFormat(strings.Join(summary.ConfigFiles, ", ")))
	}
}
