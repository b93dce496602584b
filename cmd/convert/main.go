package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"blockpress/internal/config"
	"blockpress/internal/converter"
	"blockpress/internal/media"
	"blockpress/internal/rules"
)

func main() {
	input := flag.String("in", "", "Input file (default: stdin)")
	rulesPath := flag.String("rules", "", "YAML mapping/allow-list overrides (default: RULES_FILE)")
	preset := flag.String("preset", "", "Built-in rule preset name (overridden by -rules)")
	uploadMedia := flag.Bool("upload-media", false, "Sideload images through MEDIA_ENDPOINT")
	forceHTTPS := flag.Bool("force-https", false, "Rewrite http:// image URLs to https://")
	autop := flag.Bool("autop", false, "Wrap double-newline separated text in paragraphs first")
	verbose := flag.Bool("v", false, "Debug logging to stderr")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()
	cfg := config.Load()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	raw, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	var uploader media.Uploader
	if *uploadMedia {
		if cfg.MediaEndpoint == "" {
			log.Fatal("upload-media requires MEDIA_ENDPOINT")
		}
		client := media.NewHTTPUploader(cfg.MediaEndpoint, cfg.MediaToken, nil, logger)
		uploader = media.NewCachingUploader(client, media.NewMemoryCache(), logger)
	}

	conv := converter.New(converter.Options{
		UploadMedia:   *uploadMedia,
		ForceHTTPS:    *forceHTTPS,
		AutoParagraph: *autop,
	}, uploader, logger)

	path := *rulesPath
	if path == "" {
		path = cfg.RulesFile
	}
	switch {
	case path != "":
		f, err := rules.Load(path)
		if err != nil {
			log.Fatalf("Failed to load rules file: %v", err)
		}
		f.Apply(conv)
	case *preset != "":
		registry, err := rules.NewPresetRegistry()
		if err != nil {
			log.Fatalf("Failed to load rule presets: %v", err)
		}
		f, err := registry.Get(*preset)
		if err != nil {
			log.Fatalf("Failed to resolve rule preset: %v", err)
		}
		f.Apply(conv)
	}

	out, err := conv.Convert(context.Background(), string(raw))
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Print(out)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
