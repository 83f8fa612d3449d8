package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zehraz1/portfolio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the built-in content as YAML",
	Long: `Print the built-in portfolio content. Save it, edit it, and point
content.path (or --content) at the copy to change what is shown.

Example:
  portfolio content > my-portfolio.yaml
  portfolio --content my-portfolio.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(content.DefaultYAML())
		return err
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
}
