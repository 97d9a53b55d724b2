package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/qforge/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis and refinement API over HTTP",
	Long: `Serve starts an HTTP server exposing the engine:

  GET  /health       liveness probe
  POST /api/analyze  upload a JSONL bank, get the quality summary
  POST /api/refine   upload a JSONL bank, download the refined bank`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	server := web.NewServer(cfg)
	httpServer := &http.Server{
		Addr:         serveAddr,
		Handler:      server.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", serveAddr)
	}
	return httpServer.ListenAndServe()
}
