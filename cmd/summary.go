package cmd

import (
	"github.com/jaredthirsk/claude-code-templates/internal/appdetect"
	"github.com/jaredthirsk/claude-code-templates/pkg/output"
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary [dir]",
		Short: "Show which well-known project files are present in a directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			summary := appdetect.ProjectSummary(dir)

			formatter, err := output.GetFormatter(cmd)
			if err != nil {
				return err
			}

			if formatter.Kind() != output.NoneFormat {
				return formatter.Format(summary, cmd.OutOrStdout(), nil)
			}

			writeSummaryReport(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	output.AddOutputParam(
		summaryCmd,
		[]output.Format{output.JsonFormat, output.YamlFormat, output.NoneFormat},
		output.NoneFormat,
	)

	return summaryCmd
}
