package controllers

import (
	"io"

	"github.com/rios0rios0/profilereport/internal/domain/commands"
)

// NewGenerateControllerWithWriter builds a GenerateController printing to out.
func NewGenerateControllerWithWriter(command commands.Generate, out io.Writer) *GenerateController {
	return &GenerateController{command: command, out: out}
}
