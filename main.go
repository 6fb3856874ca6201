package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-snippets/config"
	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/logging"
	"github.com/andareed/siftly-snippets/snippets"
)

type rootOptions struct {
	logFile    string
	configPath string
	envFile    string
	noList     bool
}

func main() {
	root := newRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		logging.Errorf("%s failed: %v", root.Name(), err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "sfsnip",
		Short:         "Browse and open your GitLab snippets in the terminal",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logging.SetupLogging(opts.logFile)
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			cobra.OnFinalize(cleanup)
			if opts.envFile != "" {
				config.LoadDotEnv(opts.envFile)
			} else {
				config.LoadDotEnv()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logFile, "debug", "", "write debug logs to file")
	flags.StringVar(&opts.configPath, "config", "", "config file (default: user config dir/siftly-snippets/config.yaml)")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default: ./.env)")
	root.Flags().BoolVar(&opts.noList, "no-list", false, "start with an empty document instead of the snippet list")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	log.Println("siftly-snippets: Started")
	m := newModel(modelParams{
		ctx:         ctx,
		fetcher:     gitlab.NewClient(),
		settings:    config.NewSource(opts.configPath),
		openOnStart: !opts.noList,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		return err
	}
	return nil
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the snippet list as the list view shows it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister := snippets.NewLister(gitlab.NewClient(), config.NewSource(opts.configPath))
			return printList(cmd.Context(), lister, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func printList(ctx context.Context, lister *snippets.Lister, out, errOut io.Writer) error {
	listing, err := lister.Load(ctx)
	for _, w := range listing.Warnings {
		fmt.Fprintln(errOut, w)
	}
	if err != nil {
		return err
	}
	text, _ := snippets.RenderList(listing.Entries)
	_, err = fmt.Fprintln(out, text)
	return err
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <snippet-id>",
		Short: "Print a snippet's raw content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(config.NewSource(opts.configPath))
			if err != nil {
				return err
			}
			content, err := gitlab.NewClient().FetchRaw(cmd.Context(), settings, gitlab.SnippetID(args[0]))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func loadSettings(source snippets.SettingsSource) (gitlab.Settings, error) {
	settings, err := source.Settings()
	if err != nil {
		return gitlab.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	var cfg config.Config
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				p, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteTemplate(path, cfg, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&cfg.GitLabURL, "url", "", "GitLab base URL")
	initCmd.Flags().StringVar(&cfg.GitLabToken, "token", "", "personal access token")

	cmd.AddCommand(initCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "siftly-snippets %s\n", Version)
			return err
		},
	}
}
