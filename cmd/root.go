package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Render a portfolio page from section documents",
	Long: `folio loads one JSON document per page section (site config, navigation,
hero, about, experience, skills, projects, education, contact, footer),
renders each into the page skeleton, and writes a static site that keeps
the interactive behaviors: mobile menu, smooth scrolling, scroll reveal and
active-link highlighting.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
