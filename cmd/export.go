package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ddo-deck/internal/progress"
	"github.com/ziadkadry99/ddo-deck/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export diagrams as svg, mermaid or markdown",
	Long: `Writes each selected diagram to the output directory. Formats are svg
(standalone vector file), mermaid (.mmd source) and md (a mermaid block plus a
detail table for context maps and bubble diagrams). Include and exclude take
glob patterns matched against diagram ids.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringSlice("format", nil, "export formats: svg, mermaid, md (defaults to export.formats from config)")
	exportCmd.Flags().String("out", "", "output directory (defaults to {output_dir}/diagrams)")
	exportCmd.Flags().StringSlice("include", nil, "diagram id globs to include")
	exportCmd.Flags().StringSlice("exclude", nil, "diagram id globs to exclude")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	opts := site.ExportOptions{
		Formats: cfg.Export.Formats,
		Include: cfg.Export.Include,
		Exclude: cfg.Export.Exclude,
	}
	if cmd.Flags().Changed("format") {
		opts.Formats, _ = cmd.Flags().GetStringSlice("format")
	}
	if cmd.Flags().Changed("include") {
		opts.Include, _ = cmd.Flags().GetStringSlice("include")
	}
	if cmd.Flags().Changed("exclude") {
		opts.Exclude, _ = cmd.Flags().GetStringSlice("exclude")
	}

	dir, _ := cmd.Flags().GetString("out")
	if dir == "" {
		dir = filepath.Join(cfg.OutputDir, site.DiagramsDir)
	}

	files, err := site.ExportDiagrams(cat, dir, opts, progress.NewReporter("export"))
	if err != nil {
		return fmt.Errorf("exporting diagrams: %w", err)
	}
	for _, f := range files {
		fmt.Println(f)
	}
	fmt.Printf("Exported %d files to %s\n", len(files), dir)
	return nil
}
