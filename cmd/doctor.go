package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/mhmorgan/gitignore-cli/config"
	"github.com/mhmorgan/gitignore-cli/fzf"
	"github.com/mhmorgan/gitignore-cli/templates"
	"github.com/mhmorgan/gitignore-cli/utils"
	log "github.com/mhmorgan/termlog"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"d"},
	Short:   "Diagnose common problems",
	Long: heredoc.Doc(`
		Doctor checks what gitignore depends on.

		It reports whether fzf is installed for interactive
		selection, whether the template listing can be fetched,
		and whether the destination file already exists.`),
	Args: cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		if fzf.New(cfg).Available() {
			log.Goodf("fzf ... OK")
		} else {
			log.Badf("fzf ... not found, interactive selection disabled")
		}

		client := templates.NewClient(httpClient, cfg)
		if names, err := client.Catalog(cmd.Context()); err != nil {
			log.Badf("catalog ... %v", err)
		} else {
			log.Goodf("catalog ... %d templates", len(names))
		}

		switch exists, err := utils.PathExists(cfg.Destination); {
		case err != nil:
			log.Errorf("%v ... %v", cfg.Destination, err)
		case exists:
			log.Infof("%v ... exists, will ask before overwriting", cfg.Destination)
		default:
			log.Goodf("%v ... not present", cfg.Destination)
		}
	},
}
