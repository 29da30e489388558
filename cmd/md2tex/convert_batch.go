package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2tex "github.com/alnah/go-md2tex"
	"github.com/alnah/go-md2tex/internal/fileutil"
	"github.com/alnah/go-md2tex/internal/hints"
	"github.com/alnah/go-md2tex/internal/logging"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteTeX        = errors.New("failed to write LaTeX file")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2tex.Input) (*md2tex.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2tex.Converter)(nil)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	title    *md2tex.TitlePage
	bodyOnly bool
	logger   *slog.Logger
	now      func() time.Time
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Size       int
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. The converter is shared: it
// is immutable and safe for concurrent use.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *conversionParams, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range max(1, min(workers, len(files))) {
		wg.Go(func() {
			for idx := range jobs {
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		})
	}

	// Files not yet handed out when ctx is canceled are marked, not converted.
	for i := range files {
		if ctx.Err() == nil {
			select {
			case jobs <- i:
				continue
			case <-ctx.Done():
			}
		}
		results[i] = ConversionResult{InputPath: files[i].InputPath, Err: ctx.Err()}
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
// The output is written atomically: on failure no partial file is left.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := params.now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = params.now().Sub(start)
		logging.Conversion(ctx, params.logger, result.InputPath, result.OutputPath, result.Duration, err)
		return result
	}

	tex, err := convertSource(ctx, conv, f.InputPath, params)
	if err != nil {
		return finish(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("%w: creating output directory: %w%s", ErrWriteTeX, err, hints.ForOutputDirectory()))
	}

	// #nosec G306 -- LaTeX sources are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(tex), filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %w", ErrWriteTeX, err))
	}

	result.Size = len(tex)
	return finish(nil)
}

// convertSource reads and converts one Markdown file.
func convertSource(ctx context.Context, conv CLIConverter, path string, params *conversionParams) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	res, err := conv.Convert(ctx, md2tex.Input{
		Markdown: string(content),
		Title:    params.title,
		BodyOnly: params.bodyOnly,
	})
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", path, err)
	}
	return res.TeX, nil
}

// convertToWriter converts one file and writes the document to w.
func convertToWriter(ctx context.Context, conv CLIConverter, path string, params *conversionParams, w io.Writer) error {
	tex, err := convertSource(ctx, conv, path, params)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, tex)
	return err
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// reportResults prints one line per conversion and returns an error when
// any conversion failed. A single failure is returned as is; in a batch
// each failure is printed and the first one is wrapped in the summary.
func reportResults(results []ConversionResult, quiet, verbose bool, env *Environment) error {
	summary := countResults(results)
	batch := len(results) > 1

	var firstErr error
	for _, r := range results {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			if batch {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "LaTeX document created: %s (%s, %v)\n",
				r.OutputPath, humanize.Bytes(uint64(r.Size)), r.Duration.Round(time.Millisecond)) // #nosec G115 -- size is non-negative
		} else {
			fmt.Fprintf(env.Stdout, "LaTeX document created: %s\n", r.OutputPath)
		}
	}

	if !quiet && batch {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if firstErr == nil {
		return nil
	}
	if !batch {
		return firstErr
	}
	return fmt.Errorf("%d of %d conversion(s) failed: %w", summary.Failed, len(results), firstErr)
}
