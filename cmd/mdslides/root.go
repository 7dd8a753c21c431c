package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kyaoi/mdslides/internal/app"
	"github.com/kyaoi/mdslides/internal/config"
)

type rootFlags struct {
	configPath     string
	theme          string
	themeFile      string
	tag            string
	logFile        string
	logLevel       string
	swipeThreshold int
	noMouse        bool
	inline         bool
	debug          bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mdslides <deck.md | directory>",
		Short:         "Present a markdown slide deck in the terminal",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), filepath.Clean(args[0]), cfg, cmd.ErrOrStderr())
		},
	}

	addConfigFlags(cmd, flags)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(flags))

	return cmd
}

func addConfigFlags(cmd *cobra.Command, flags *rootFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", config.DefaultPath(), "Path to the configuration file")
	pf.StringVar(&flags.theme, "theme", "", "Theme: auto, dark or light")
	pf.StringVar(&flags.themeFile, "theme-file", "", "File holding \"dark\" or \"light\", watched for changes")
	pf.StringVarP(&flags.tag, "tag", "t", "", "Only present sources whose frontmatter lists this tag")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.IntVar(&flags.swipeThreshold, "swipe-threshold", 0, "Columns a mouse drag must exceed to change slides")
	pf.BoolVar(&flags.noMouse, "no-mouse", false, "Disable mouse clicks and swipes")
	pf.BoolVar(&flags.inline, "inline", false, "Render inline instead of using the alternate screen")
	pf.BoolVar(&flags.debug, "debug", false, "Show navigation state and trace transitions")
}

// loadConfig merges file and environment configuration with the flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("theme") {
		cfg.Theme = flags.theme
	}
	if changed("theme-file") {
		cfg.ThemeFile = flags.themeFile
	}
	if changed("tag") {
		cfg.Tag = flags.tag
	}
	if changed("log-file") {
		cfg.LogFile = flags.logFile
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("swipe-threshold") {
		cfg.SwipeThreshold = flags.swipeThreshold
	}
	if changed("no-mouse") {
		cfg.Mouse = !flags.noMouse
	}
	if changed("inline") {
		cfg.AltScreen = !flags.inline
	}
	if changed("debug") {
		cfg.Debug = flags.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
