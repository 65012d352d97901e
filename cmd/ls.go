package cmd

import (
	"fmt"
	"github.com/MakeNowJust/heredoc"
	"github.com/mhmorgan/gitignore-cli/config"
	"github.com/mhmorgan/gitignore-cli/templates"
	"github.com/spf13/cobra"
	"strings"
)

func init() {
	RootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:     "ls [query]",
	Aliases: []string{"list", "l"},
	Short:   "List all available gitignore templates",
	Long: heredoc.Doc(`
		List all available gitignore templates, one per line.

		The optional QUERY fuzzy-filters the list, so "ls pyt"
		shows Python among others.`),
	Args: cobra.ArbitraryArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		client := templates.NewClient(httpClient, config.Get())
		names, err := client.Catalog(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range templates.Filter(names, strings.Join(args, " ")) {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}
