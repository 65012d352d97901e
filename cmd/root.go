package cmd

import (
	"context"
	"github.com/MakeNowJust/heredoc"
	"github.com/mhmorgan/gitignore-cli/config"
	"github.com/mhmorgan/gitignore-cli/fzf"
	"github.com/mhmorgan/gitignore-cli/ignorefile"
	"github.com/mhmorgan/gitignore-cli/templates"
	"github.com/mhmorgan/gitignore-cli/utils"
	log "github.com/mhmorgan/termlog"
	"github.com/spf13/cobra"
	"net/http"
)

var (
	cfgFile string

	// httpClient is used for all requests; nil means
	// http.DefaultClient.
	httpClient *http.Client
)

func init() {
	cobra.OnInitialize(initConfig)
	pf := RootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", utils.RelHome(".gitignore-cli.yaml"), "config file")
}

func initConfig() {
	if err := config.Loadf(cfgFile); err != nil {
		log.Fatal(err)
	}
}

var RootCmd = &cobra.Command{
	Use:   "gitignore [template]",
	Short: "Download .gitignore files from the github/gitignore repository",
	Long: heredoc.Doc(`
		Download .gitignore files from the github/gitignore repository.

		With a template name the template is downloaded to .gitignore
		in the current directory. Without one the templates are listed
		in fzf for you to pick from, if fzf is installed.

		An existing .gitignore is only replaced after confirmation.`),
	Example: heredoc.Doc(`
		gitignore Go
		gitignore ls
		gitignore`),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		client := templates.NewClient(httpClient, cfg)

		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			sel := fzf.New(cfg)
			sel.Out = cmd.OutOrStdout()
			sel.Stderr = cmd.ErrOrStderr()

			selected, ok, err := sel.Select(cmd.Context(), client.Catalog)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			name = selected
		}

		w := ignorefile.New(cfg.Destination)
		w.In = cmd.InOrStdin()
		w.Out = cmd.OutOrStdout()
		return download(cmd.Context(), client, w, name)
	},
}

func download(ctx context.Context, client templates.Client, w *ignorefile.Writer, name string) error {
	content, err := client.Fetch(ctx, name)
	if err != nil {
		return err
	}

	outcome, err := w.Write(content)
	if err != nil {
		return err
	}
	switch outcome {
	case ignorefile.Aborted:
		log.Infof("Aborted.")
	case ignorefile.Written:
		log.Goodf("Downloaded %s template to %s", name, w.Path)
	}
	return nil
}
