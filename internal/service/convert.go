package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blockpress/internal/config"
	"blockpress/internal/converter"
	"blockpress/internal/domain"
	"blockpress/internal/excerpt"
	"blockpress/internal/media"
	"blockpress/internal/rules"
)

// ConvertRequest is a single conversion job. The option pointers override the
// deployment defaults when set; nil means "use the configured default".
type ConvertRequest struct {
	HTML          string `json:"html"`
	UploadMedia   *bool  `json:"upload_media,omitempty"`
	ForceHTTPS    *bool  `json:"force_https,omitempty"`
	AutoParagraph *bool  `json:"auto_paragraph,omitempty"`
	Excerpt       bool   `json:"excerpt,omitempty"`
}

// Validate checks the request against input limits.
func (r ConvertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.HTML,
			validation.Required.Error("html is required"),
			validation.Length(1, config.MaxInputBytes).Error("html exceeds the input limit"),
		),
	)
}

// ConvertResult carries the serialized block markup and the optional excerpt.
type ConvertResult struct {
	Blocks  string `json:"blocks"`
	Excerpt string `json:"excerpt,omitempty"`
}

// ConvertService turns raw markup into block markup, applying deployment-wide
// option defaults and mapping rules to each request.
type ConvertService struct {
	uploader   media.Uploader
	excerptGen *excerpt.Generator
	rules      *rules.File
	defaults   converter.Options
	logger     *slog.Logger
}

// NewConvertService creates a new convert service
func NewConvertService(
	uploader media.Uploader,
	rulesFile *rules.File,
	defaults converter.Options,
	logger *slog.Logger,
) *ConvertService {
	return &ConvertService{
		uploader:   uploader,
		excerptGen: excerpt.NewGenerator(),
		rules:      rulesFile,
		defaults:   defaults,
		logger:     logger,
	}
}

// Convert validates the request and runs the conversion. Each request gets a
// fresh converter so per-request option overrides never leak across calls.
func (s *ConvertService) Convert(ctx context.Context, req *ConvertRequest) (*ConvertResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	opts := s.defaults
	if req.UploadMedia != nil {
		opts.UploadMedia = *req.UploadMedia
	}
	if req.ForceHTTPS != nil {
		opts.ForceHTTPS = *req.ForceHTTPS
	}
	if req.AutoParagraph != nil {
		opts.AutoParagraph = *req.AutoParagraph
	}

	conv := converter.New(opts, s.uploader, s.logger)
	if s.rules != nil {
		s.rules.Apply(conv)
	}

	out, err := conv.Convert(ctx, req.HTML)
	if err != nil {
		return nil, fmt.Errorf("convert markup: %w", err)
	}

	result := &ConvertResult{Blocks: out}
	excerptWords := 0
	if req.Excerpt {
		text, err := s.excerptGen.Generate(ctx, req.HTML)
		if err != nil {
			s.logger.Warn("excerpt generation failed", "error", err)
		} else {
			result.Excerpt = text
			excerptWords = excerpt.CountWords(text)
		}
	}

	s.logger.Info("conversion complete",
		"input_bytes", len(req.HTML),
		"output_bytes", len(result.Blocks),
		"excerpt_words", excerptWords,
	)

	return result, nil
}
