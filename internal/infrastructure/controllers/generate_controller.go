package controllers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/profilereport/internal/domain/commands"
	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

const documentFileMode = 0o644

// GenerateController handles the "generate" subcommand and the standalone root mode.
type GenerateController struct {
	command commands.Generate
	out     io.Writer
}

// NewGenerateController creates a new GenerateController writing to stdout.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command, out: os.Stdout}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate <profile-url>",
		Short: "Generate a PDF report for a GitHub profile",
		Long: `Fetch the public profile and repositories of a GitHub account and
write a one-page PDF summarising its tech stack, experience and impact.

The argument may be a profile URL (https://github.com/octocat) or a bare login.`,
	}
}

// Execute runs one report and writes the document to the configured output.
func (it *GenerateController) Execute(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) == 0 {
		logger.Error("A profile URL or login is required")
		return
	}

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	output, _ := cmd.Flags().GetString("output")

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}
	if output != "" {
		settings.Output = output
	}

	result, runErr := it.command.Execute(ctx, settings, commands.GenerateOptions{
		Input:   args[0],
		Verbose: verbose,
	})

	location := ""
	if runErr == nil {
		location, runErr = writeDocument(settings.Output, result)
		if runErr != nil {
			logger.Errorf("Failed to save report: %v", runErr)
			result = entities.NewFailedResult(result.Identifier)
		}
	}

	_, _ = fmt.Fprint(it.out, RenderResult(result, location))
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "",
		fmt.Sprintf("File or directory to write the report to (default %q)", entities.ReportFileName))
}

// writeDocument saves the document and returns its final path. A directory
// target receives the document under its download name.
func writeDocument(target string, result entities.ReportResult) (string, error) {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, result.FileName)
	}

	if err := os.WriteFile(target, result.Document, documentFileMode); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", target, err)
	}
	return target, nil
}
