package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rios0rios0/profilereport/internal/domain/commands"
	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

const formatJSON = "json"

// ReportHandler serves reports as downloads over HTTP.
type ReportHandler struct {
	command     commands.Generate
	settings    *entities.Settings
	contentType string
}

// NewReportHandler creates a handler running command with settings.
func NewReportHandler(command commands.Generate, settings *entities.Settings, contentType string) *ReportHandler {
	return &ReportHandler{
		command:     command,
		settings:    settings,
		contentType: contentType,
	}
}

// NewRouter builds the Echo instance exposing the report routes.
func NewRouter(handler *ReportHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/report", handler.HandleReport)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// reportSummary is the JSON view of a run, for callers that only want the
// completion flag and the repositories list.
type reportSummary struct {
	Generated    bool                `json:"generated"`
	Identifier   string              `json:"identifier"`
	Repositories []repositorySummary `json:"repositories"`
}

type repositorySummary struct {
	Name     string  `json:"name"`
	Language *string `json:"language"`
	Stars    int     `json:"stargazers_count"`
	Forks    int     `json:"forks_count"`
}

// HandleReport handles GET /report. It runs the pipeline for ?profile= and
// answers with the document as an attachment, or with its summary when
// ?format=json is given.
func (h *ReportHandler) HandleReport(c echo.Context) error {
	profile := c.QueryParam("profile")
	if profile == "" {
		return c.String(http.StatusBadRequest, "missing profile parameter")
	}

	started := time.Now()
	result, err := h.command.Execute(c.Request().Context(), h.settings, commands.GenerateOptions{Input: profile})
	observeRun(err, time.Since(started))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, entities.ErrEmptyIdentifier) {
			status = http.StatusBadRequest
		}
		return c.String(status, generationFailedMessage)
	}

	if c.QueryParam("format") == formatJSON {
		return c.JSON(http.StatusOK, newReportSummary(result))
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	header.Set(echo.HeaderContentLength, strconv.Itoa(len(result.Document)))
	return c.Blob(http.StatusOK, h.contentType, result.Document)
}

func newReportSummary(result entities.ReportResult) reportSummary {
	summary := reportSummary{
		Generated:    result.Generated,
		Identifier:   result.Identifier,
		Repositories: make([]repositorySummary, 0, len(result.Artifacts)),
	}
	for _, artifact := range result.Artifacts {
		summary.Repositories = append(summary.Repositories, repositorySummary{
			Name:     artifact.Name,
			Language: artifact.Language,
			Stars:    artifact.Stars,
			Forks:    artifact.Forks,
		})
	}
	return summary
}
