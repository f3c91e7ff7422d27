package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ddo-deck/internal/server"
	"github.com/ziadkadry99/ddo-deck/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live presentation server",
	Long: `Serves the interactive deck. Each browser tab opens a websocket and gets
its own server-side session; gestures are evaluated on the server and the
resulting DOM patches are streamed back. Context stress scores can be pushed
with POST /api/contexts/{name}/stress or the stress command.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to port from config)")
	serveCmd.Flags().Bool("watch", false, "reload sessions when the catalog data file changes")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Port
	}
	watch := cfg.Watch
	if cmd.Flags().Changed("watch") {
		watch, _ = cmd.Flags().GetBool("watch")
	}
	if watch && cfg.DataFile == "" {
		return fmt.Errorf("--watch requires data_file in %s", cfgFile)
	}

	srv, err := server.New(server.Config{
		Port:        port,
		Title:       cfg.Title,
		AllowAll:    cfg.AllowAllOrigins,
		CatalogPath: cfg.DataFile,
		Watch:       watch,
		Deck:        cfg.DeckOptions(),
	}, cat, log)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := fmt.Sprintf("http://localhost:%d", port)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(url)
	}
	fmt.Printf("Live presentation at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	return srv.Run(ctx)
}
