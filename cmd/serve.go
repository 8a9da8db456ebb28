package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/podforge/podforge-api/api"
	"github.com/podforge/podforge-api/internal/database"
	"github.com/podforge/podforge-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podforge API server with the configured settings.

The server exposes script parsing, podcast script and audio generation,
job management, and the voice catalog over HTTP. Generation endpoints run
synchronously, so the configured write timeout has to cover the full
generation budget.

Example:
  podforge-api serve
  podforge-api serve --port 9090
  podforge-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	host := serverHost
	if host == "" {
		host = cfg.Server.Host
	}
	port := serverPort
	if port == 0 {
		port = cfg.Server.Port
	}

	// Open the job store and bring the schema up to date
	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	address := fmt.Sprintf("%s:%d", host, port)
	server := api.NewServer(address, cfg.Server)
	server.SetDatabase(db)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Log server startup
	fmt.Printf("Starting Podforge API server on %s\n", address)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", address)

	// Wait for an interrupt signal, command cancellation, or a server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case <-cmd.Context().Done():
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	// Create a context with timeout for shutdown
	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}
