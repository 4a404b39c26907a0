// Package reporter renders scan results for the CLI.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sprintgm/sprintgm/internal/assets"
	"github.com/sprintgm/sprintgm/internal/scanner"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// bundleReport is the serializable view of one bundle
type bundleReport struct {
	Key      string            `json:"key" yaml:"key"`
	Basename string            `json:"basename" yaml:"basename"`
	Folder   string            `json:"folder" yaml:"folder"`
	Files    map[string]string `json:"files" yaml:"files"`
	Other    []string          `json:"other,omitempty" yaml:"other,omitempty"`
}

// scanReport is the serializable view of a whole scan
type scanReport struct {
	Folder        string         `json:"folder" yaml:"folder"`
	Games         []bundleReport `json:"games" yaml:"games"`
	Folders       []bundleReport `json:"folders" yaml:"folders"`
	PaletteFiles  []string       `json:"palette_files,omitempty" yaml:"palette_files,omitempty"`
	KeyboardFiles []string       `json:"keyboard_files,omitempty" yaml:"keyboard_files,omitempty"`
	Errors        []string       `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Report renders the scan result in the configured format
func (r *Reporter) Report(result *scanner.Result) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(result)
	case FormatJSON:
		return r.reportJSON(result)
	case FormatYAML:
		return r.reportYAML(result)
	case FormatSummary:
		return r.reportSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportSummary(result *scanner.Result) error {
	fmt.Fprintf(r.writer, "=== Scan Summary ===\n")
	fmt.Fprintf(r.writer, "Folder: %s\n", result.Folder)
	fmt.Fprintf(r.writer, "Games: %d\n", len(result.Games))
	fmt.Fprintf(r.writer, "Folder bundles: %d\n", len(result.Folders))
	fmt.Fprintf(r.writer, "Palette files: %d\n", len(result.PaletteFiles))
	fmt.Fprintf(r.writer, "Keyboard files: %d\n", len(result.KeyboardFiles))

	if len(result.Errors) > 0 {
		fmt.Fprintf(r.writer, "\nSkipped directories:\n")
		for _, err := range result.Errors {
			fmt.Fprintf(r.writer, "  %v\n", err)
		}
	}
	return nil
}

func (r *Reporter) reportTable(result *scanner.Result) error {
	fmt.Fprintf(r.writer, "%-40s %-5s %-5s %-5s %-8s %-6s\n",
		"GAME", "ROM", "CFG", "JSON", "IMAGES", "OTHER")

	for _, key := range result.GameKeys {
		game := result.Games[key]
		images := 0
		for _, k := range assets.Kinds {
			if k == assets.KindRom || k == assets.KindConfig || k == assets.KindMetadata {
				continue
			}
			if game.Path(k) != "" {
				images++
			}
		}
		fmt.Fprintf(r.writer, "%-40s %-5s %-5s %-5s %-8d %-6d\n",
			key,
			mark(game.Path(assets.KindRom)),
			mark(game.Path(assets.KindConfig)),
			mark(game.Path(assets.KindMetadata)),
			images,
			len(game.Other))
	}

	if len(result.FolderKeys) > 0 {
		fmt.Fprintf(r.writer, "\nFolder companions:\n")
		for _, key := range result.FolderKeys {
			bundle := result.Folders[key]
			fmt.Fprintf(r.writer, "  %s (%d files)\n", key, len(bundle.Files()))
		}
	}
	return nil
}

func (r *Reporter) reportJSON(result *scanner.Result) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(buildReport(result))
}

func (r *Reporter) reportYAML(result *scanner.Result) error {
	data, err := yaml.Marshal(buildReport(result))
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = r.writer.Write(data)
	return err
}

func buildReport(result *scanner.Result) *scanReport {
	report := &scanReport{
		Folder:        result.Folder,
		Games:         make([]bundleReport, 0, len(result.GameKeys)),
		Folders:       make([]bundleReport, 0, len(result.FolderKeys)),
		PaletteFiles:  result.PaletteFiles,
		KeyboardFiles: result.KeyboardFiles,
	}

	for _, key := range result.GameKeys {
		report.Games = append(report.Games, buildBundleReport(key, result.Games[key]))
	}
	for _, key := range result.FolderKeys {
		report.Folders = append(report.Folders, buildBundleReport(key, result.Folders[key]))
	}
	for _, err := range result.Errors {
		report.Errors = append(report.Errors, err.Error())
	}
	return report
}

func buildBundleReport(key string, b *assets.Bundle) bundleReport {
	files := make(map[string]string)
	for _, k := range assets.Kinds {
		if p := b.Path(k); p != "" {
			files[k.String()] = filepath.Base(p)
		}
	}
	return bundleReport{
		Key:      key,
		Basename: b.Basename,
		Folder:   b.Folder,
		Files:    files,
		Other:    b.Other,
	}
}

func mark(path string) string {
	if path != "" {
		return "yes"
	}
	return "-"
}
