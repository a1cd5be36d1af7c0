package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/graft"
	httpAdapter "github.com/aretw0/graft/internal/adapters/http"
	"github.com/aretw0/graft/internal/cli"
	"github.com/aretw0/graft/internal/tableio"
	"github.com/aretw0/graft/pkg/observability"
	"github.com/aretw0/graft/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Fit a recipe and serve transforms over HTTP",
	Long:  `Fits the recipe on training data once at startup, then exposes the fitted applier as a JSON API with Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		train, _ := cmd.Flags().GetString("train")
		logLevel, _ := cmd.Flags().GetString("log-level")

		if train == "" {
			fmt.Println("Error: serve needs --train data to fit the recipe on startup.")
			os.Exit(1)
		}

		logger, err := cli.NewLogger(logLevel)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		rec, err := recipeRef(cmd).Load(cmd.Context())
		if err != nil {
			fmt.Printf("Error loading recipe: %v\n", err)
			os.Exit(1)
		}

		metrics := observability.NewMetrics()
		promReg := prometheus.NewRegistry()
		metrics.MustRegister(promReg)

		hooks := observability.JoinHooks(cli.LogHooks(logger), metrics.Hooks())
		app, err := rec.Build(registry.Builtin(),
			graft.WithLogger(logger),
			graft.WithLifecycleHooks(hooks),
		)
		if err != nil {
			fmt.Printf("Error building applier: %v\n", err)
			os.Exit(1)
		}

		f, err := os.Open(train)
		if err != nil {
			fmt.Printf("Error opening training data: %v\n", err)
			os.Exit(1)
		}
		tbl, err := tableio.ReadCSV(f)
		f.Close()
		if err != nil {
			fmt.Printf("Error reading training data: %v\n", err)
			os.Exit(1)
		}
		if err := app.Fit(tbl, nil); err != nil {
			fmt.Printf("Error fitting recipe: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(app,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(promReg),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Graft Server on %s\n", srv.Addr)
			fmt.Printf("Serving recipe: %s\n", rec.Name)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Graft Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addRecipeFlags(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("train", "", "CSV file with training data to fit on")
}
