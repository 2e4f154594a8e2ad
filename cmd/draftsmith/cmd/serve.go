package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/draftsmith-ai/draftsmith/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve both pipelines over HTTP",
	Long: `Starts the HTTP API: POST /api/generate runs the content pipeline,
POST /api/ask runs the SQL pipeline, GET /api/health reports status.
Each request gets its own pipeline state.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	_ = v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	pipeline, err := buildContentPipeline(ctx, cfg, log)
	if err != nil {
		return err
	}
	agent, ds, err := buildAgent(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = ds.Close() }()

	srv := api.NewServer(pipeline, agent,
		api.WithLogger(log),
		api.WithVersion(appVersion),
		api.WithAllowedOrigins(cfg.Server.AllowedOrigins))

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "draftsmith API listening on %s\n", cfg.Server.Addr)
	log.Info("serving", "addr", cfg.Server.Addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
