package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ddo-deck/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ddodeck",
	Short: "Server-driven operating model presentation",
	Long: `ddodeck renders the operating model presentation from a catalog of
diagrams and detail records. It builds a static site, exports diagrams as
SVG, mermaid or markdown, and serves a live deck where every browser tab is
driven by its own server-side session.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
