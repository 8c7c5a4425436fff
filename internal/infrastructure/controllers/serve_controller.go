package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/profilereport/internal/domain/commands"
	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/domain/repositories"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command   commands.Generate
	documents repositories.DocumentRepository
}

// NewServeController creates a new ServeController.
func NewServeController(
	command commands.Generate,
	documents repositories.DocumentRepository,
) *ServeController {
	return &ServeController{command: command, documents: documents}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Serve reports as browser downloads",
		Long: `Start an HTTP server that generates reports on demand.

  GET /report?profile=<url>              download GitHub_Profile_Report.pdf
  GET /report?profile=<url>&format=json  completion flag and repositories list
  GET /healthz                           liveness probe
  GET /metrics                           Prometheus metrics`,
	}
}

// Execute runs the HTTP server until SIGINT or SIGTERM.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) {
	configPath, _ := cmd.Flags().GetString("config")
	listen, _ := cmd.Flags().GetString("listen")

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	if listen != "" {
		settings.Listen = listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveErr := it.serve(ctx, settings); serveErr != nil {
		logger.Errorf("Server failed: %v", serveErr)
	}
}

// AddFlags adds the serve-specific flags to the given Cobra command.
func (it *ServeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("listen", "", "Address to listen on (default \""+entities.DefaultListen+"\")")
}

func (it *ServeController) serve(ctx context.Context, settings *entities.Settings) error {
	e := NewRouter(NewReportHandler(it.command, settings, it.documents.ContentType()))
	e.Server.ReadHeaderTimeout = readHeaderTimeout

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving reports on %s", settings.Listen)
		errCh <- e.Start(settings.Listen)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
