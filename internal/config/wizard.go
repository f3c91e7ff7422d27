package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// catalogCandidates are data files offered as the catalog when present.
var catalogCandidates = []string{"catalog.yaml", "catalog.yml", "deck.yaml", "deck.yml"}

// detectCatalog checks the current directory for a catalog file.
func detectCatalog() string {
	for _, name := range catalogCandidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .ddodeck.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to ddodeck! Let's configure your presentation.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Presentation title (blank keeps the catalog title)",
		Default: "",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 2. Catalog data file.
	detected := detectCatalog()
	if detected != "" {
		fmt.Printf("Detected catalog file: %s\n\n", detected)
	}
	dataPrompt := promptui.Prompt{
		Label:   "Catalog data file (blank uses the built-in catalog)",
		Default: detected,
	}
	dataFile, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data file: %w", err)
	}
	cfg.DataFile = strings.TrimSpace(dataFile)

	if cfg.DataFile != "" {
		watchPrompt := promptui.Select{
			Label: "Reload the live server when the catalog changes?",
			Items: []string{"yes", "no"},
		}
		idx, _, err := watchPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("watch selection: %w", err)
		}
		cfg.Watch = idx == 0
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Port for the live server",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Export formats.
	formatPrompt := promptui.Select{
		Label: "Default diagram export",
		Items: []string{
			"svg     standalone vector files",
			"mermaid mermaid source",
			"all     svg, mermaid and markdown tables",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("format selection: %w", err)
	}
	cfg.Export.Formats = [][]string{{"svg"}, {"mermaid"}, {"svg", "mermaid", "md"}}[formatIdx]

	// 6. Export excludes.
	excludePrompt := promptui.Prompt{
		Label:   "Diagrams to leave out of exports (comma-separated globs)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Export.Exclude = splitAndTrim(excludeStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
