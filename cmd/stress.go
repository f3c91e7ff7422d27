package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ddo-deck/internal/catalog"
)

var stressCmd = &cobra.Command{
	Use:   "stress <context>",
	Short: "Push a stress score to a running live server",
	Long: `Updates the stress score and mode of one bounded context on a running
ddodeck serve. Every open session redraws its stress grid. Scores are
clamped to [0, 1] by the server.`,
	Args: cobra.ExactArgs(1),
	RunE: runStress,
}

func init() {
	stressCmd.Flags().Float64("score", 0, "stress score between 0 and 1")
	stressCmd.Flags().String("mode", "", "operating mode label")
	stressCmd.Flags().String("addr", "http://localhost:8080", "address of the live server")
	rootCmd.AddCommand(stressCmd)
}

func runStress(cmd *cobra.Command, args []string) error {
	body := map[string]any{}
	if cmd.Flags().Changed("score") {
		score, _ := cmd.Flags().GetFloat64("score")
		body["score"] = score
	}
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		body["mode"] = mode
	}
	if len(body) == 0 {
		return fmt.Errorf("--score or --mode is required")
	}
	addr, _ := cmd.Flags().GetString("addr")
	ctx, err := postStress(addr, args[0], body)
	if err != nil {
		return err
	}
	fmt.Printf("%s: score %.2f, mode %s\n", ctx.Name, ctx.Score, ctx.Mode)
	return nil
}

// postStress sends one update to the stress hook of a live server and
// returns the stored context.
func postStress(addr, name string, body map[string]any) (catalog.StressContext, error) {
	var ctx catalog.StressContext
	payload, err := json.Marshal(body)
	if err != nil {
		return ctx, err
	}
	endpoint := strings.TrimRight(addr, "/") + "/api/contexts/" + url.PathEscape(name) + "/stress"

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return ctx, fmt.Errorf("posting stress update: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ctx, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return ctx, fmt.Errorf("server returned %d: %s", resp.StatusCode, e.Error)
		}
		return ctx, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, &ctx); err != nil {
		return ctx, fmt.Errorf("decoding response: %w", err)
	}
	return ctx, nil
}
