package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ddo-deck/internal/progress"
	"github.com/ziadkadry99/ddo-deck/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static presentation",
	Long: `Writes the presentation page, its assets and the exported diagrams to the
output directory. The static page shows every diagram with its default
overlays; run ddodeck serve for the interactive deck.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after generating")
	buildCmd.Flags().Int("port", 0, "port for the local file server (defaults to port from config)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	generator := site.NewSiteGenerator(cat, outputDir)
	generator.Title = cfg.Title
	generator.Export = site.ExportOptions{
		Formats: cfg.Export.Formats,
		Include: cfg.Export.Include,
		Exclude: cfg.Export.Exclude,
	}
	generator.Reporter = progress.NewReporter("export")

	count, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Printf("Static presentation generated: %s (%d files)\n", outputDir, count)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	open, _ := cmd.Flags().GetBool("open")
	return site.Serve(outputDir, port, open)
}
