package service

import (
	"log/slog"

	"github.com/mhoo999/mail-maker/internal/domains"
	"github.com/mhoo999/mail-maker/internal/generator"
	"github.com/mhoo999/mail-maker/internal/parser"
)

type MailService struct {
	generator *generator.Generator
	layout    domains.LayoutSettings
}

type Inspection struct {
	Recognized bool `json:"recognized"`
	Count      int  `json:"count"`
}

// NewMailService uses layout whenever a caller does not pass one.
func NewMailService(gen *generator.Generator, layout domains.LayoutSettings) *MailService {
	return &MailService{
		generator: gen,
		layout:    layout,
	}
}

func (s *MailService) Generate(blocks []domains.Block, layout *domains.LayoutSettings) (string, error) {
	if layout == nil {
		l := s.layout
		layout = &l
	}
	html, err := s.generator.Generate(blocks, layout)
	if err != nil {
		slog.Error("generate html failed", "blocks", len(blocks), "err", err)
		return "", err
	}
	return html, nil
}

func (s *MailService) Parse(html string) (domains.Blocks, error) {
	blocks, err := parser.Parse(html)
	if err != nil {
		slog.Warn("parse html failed", "bytes", len(html), "err", err)
		return nil, err
	}
	return blocks, nil
}

func (s *MailService) Inspect(html string) Inspection {
	return Inspection{
		Recognized: parser.IsRecognized(html),
		Count:      parser.CountBlocks(html),
	}
}
