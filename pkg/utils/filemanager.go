// =============================================================================
// Powiaty Converter - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the converter, including:
//   - Directory management
//   - JSON document writing
//   - Processing summary logs
//
// =============================================================================

package utils

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the parent directory of path if it doesn't exist.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// =============================================================================
// JSON OUTPUT
// =============================================================================

// MarshalIndentJSON encodes v as JSON indented with two spaces. Non-ASCII
// characters and HTML-sensitive characters are written as-is.
func MarshalIndentJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSONFile writes v as indented JSON to path, creating parent
// directories and overwriting any existing file.
//
// PARAMETERS:
//   - path: The destination file.
//   - v: The value to encode.
//
// RETURNS:
//   - An error if encoding, directory creation or writing fails.
func WriteJSONFile(path string, v any) error {
	data, err := MarshalIndentJSON(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if err := EnsureParentDir(path); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary contains summary information about a conversion run.
type ProcessingSummary struct {
	RunID          string
	StartTime      time.Time
	EndTime        time.Time
	InputFile      string
	OutputFile     string
	RowsRead       int
	RecordsWritten int
	SkippedRows    int
	MissingTeryt   int
	AverageOverall float64
	AverageMale    float64
	AverageFemale  float64
	Warnings       []string
}

// WriteSummaryLog writes a processing summary to a text file in outputDir.
//
// PARAMETERS:
//   - summary: The processing summary.
//   - outputDir: The directory to write the summary file. Created if missing.
//
// RETURNS:
//   - The path to the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary ProcessingSummary, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	timestamp := summary.StartTime.Format("20060102_150405")
	summaryFileName := fmt.Sprintf("processing_summary_%s_%s.txt", timestamp, summary.RunID)
	summaryPath := filepath.Join(outputDir, summaryFileName)

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "Powiaty Converter - Processing Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n"+
		"  Input:          %s\n"+
		"  Output:         %s\n\n"+
		"Statistics:\n"+
		"  Rows Read:          %d\n"+
		"  Records Written:    %d\n"+
		"  Skipped Rows:       %d\n"+
		"  Missing TERYT:      %d\n\n"+
		"National Averages:\n"+
		"  Overall:            %.2f PLN\n"+
		"  Male:               %.2f PLN\n"+
		"  Female:             %.2f PLN\n\n",
		summary.RunID,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.InputFile,
		summary.OutputFile,
		summary.RowsRead,
		summary.RecordsWritten,
		summary.SkippedRows,
		summary.MissingTeryt,
		summary.AverageOverall,
		summary.AverageMale,
		summary.AverageFemale)

	if len(summary.Warnings) > 0 {
		writer.WriteString("Warnings:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, w := range summary.Warnings {
			fmt.Fprintf(writer, "  %s\n", w)
		}
		writer.WriteString("\n")
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}
