// =============================================================================
// Powiaty Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It turns the ZUS workbook
// of average pensions by powiat into the powiaty JSON document.
//
// CONVERSION PIPELINE:
//   1. Read the first sheet of the source workbook
//   2. Map every data row with a name to a DistrictRecord
//   3. Compute the national averages
//   4. Assemble the document metadata
//   5. Validate the document (findings are logged, never fatal)
//   6. Write the JSON document, creating parent directories
//
// The pipeline is a single synchronous pass; the workbook is closed before
// any output is written.
//
// =============================================================================

package converter

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/powiaty-converter/internal/config"
	"github.com/ginjaninja78/powiaty-converter/internal/types"
	"github.com/ginjaninja78/powiaty-converter/internal/validation"
	"github.com/ginjaninja78/powiaty-converter/internal/xlsxparser"
	"github.com/ginjaninja78/powiaty-converter/pkg/utils"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrSourceNotFound is returned when the input workbook does not exist.
	ErrSourceNotFound = xlsxparser.ErrSourceNotFound

	// ErrMalformedSource is returned when the workbook is unreadable, has no
	// sheet, has too few rows, or holds a non-numeric code or average.
	ErrMalformedSource = xlsxparser.ErrMalformedSource

	// ErrWriteFailure is returned when the output document cannot be written.
	ErrWriteFailure = errors.New("failed to write output")
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of a conversion run.
type Result struct {
	// RunID identifies the run in logs and the summary log.
	RunID string

	// InputFile is the path to the workbook that was converted.
	InputFile string

	// OutputFile is the path to the generated JSON file.
	OutputFile string

	// Document is the generated document.
	Document *types.OutputDocument

	// Validation holds the findings of the post-conversion check.
	Validation *validation.ValidationResult

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsRead is the number of data rows after the header block.
	RowsRead int

	// RecordsWritten is the number of DistrictRecords in the document.
	RecordsWritten int

	// SkippedRows is the number of data rows without a name.
	SkippedRows int

	// MissingTeryt is the number of records without a TERYT code.
	MissingTeryt int

	// StartTime is when the run started.
	StartTime time.Time

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts one source workbook into one powiaty document.
type Converter struct {
	cfg    *config.Config
	logger *zap.Logger
	runID  string
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - cfg: The application configuration (paths, sheet layout, metadata).
//   - logger: The logger; nil disables logging.
//
// RETURNS:
//   - A new Converter instance.
func New(cfg *config.Config, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.New().String()
	return &Converter{
		cfg:    cfg,
		logger: logger.With(zap.String("run_id", runID)),
		runID:  runID,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline and writes the output file.
//
// RETURNS:
//   - The Result, populated up to the failing step on error.
//   - An error wrapping ErrSourceNotFound, ErrMalformedSource or ErrWriteFailure.
func (c *Converter) Run() (*Result, error) {
	result := &Result{
		RunID:      c.runID,
		InputFile:  c.cfg.InputFile,
		OutputFile: c.cfg.OutputFile,
	}
	result.Stats.StartTime = time.Now()

	doc, err := c.Convert(&result.Stats)
	if err != nil {
		return result, err
	}
	result.Document = doc

	result.Validation = validation.ValidateDocument(doc)
	for _, finding := range result.Validation.Errors {
		c.logger.Warn("Validation finding",
			zap.String("severity", finding.Severity),
			zap.Int("index", finding.Index),
			zap.String("field", finding.Field),
			zap.String("value", finding.Value),
			zap.String("message", finding.Message))
	}

	if utils.FileExists(c.cfg.OutputFile) {
		c.logger.Debug("Overwriting existing output", zap.String("path", c.cfg.OutputFile))
	}
	if err := utils.WriteJSONFile(c.cfg.OutputFile, doc); err != nil {
		return result, fmt.Errorf("%w: %s: %v", ErrWriteFailure, c.cfg.OutputFile, err)
	}
	c.logger.Info("Wrote output", zap.String("path", c.cfg.OutputFile))

	result.Stats.ProcessingTime = time.Since(result.Stats.StartTime)

	if c.cfg.SummaryLogDir != "" {
		path, err := utils.WriteSummaryLog(result.Summary(), c.cfg.SummaryLogDir)
		if err != nil {
			// The document is already written; a missing summary is not fatal.
			c.logger.Warn("Failed to write summary log", zap.Error(err))
		} else {
			c.logger.Debug("Wrote summary log", zap.String("path", path))
		}
	}

	return result, nil
}

// Convert reads the source workbook and builds the document without
// writing anything. stats may be nil.
func (c *Converter) Convert(stats *ProcessingStats) (*types.OutputDocument, error) {
	if stats == nil {
		stats = &ProcessingStats{}
	}

	layout := c.cfg.SheetLayout
	c.logger.Info("Reading source workbook", zap.String("path", c.cfg.InputFile))

	sheet, err := xlsxparser.ReadFirstSheet(c.cfg.InputFile, layout.PreambleRows+1)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Read sheet", zap.String("sheet", sheet.Name), zap.Int("rows", len(sheet.Rows)))

	records, err := c.BuildRecords(sheet, stats)
	if err != nil {
		return nil, err
	}

	doc := &types.OutputDocument{
		Version:         c.cfg.Metadata.Version,
		Source:          c.sourceName(),
		DataDate:        c.cfg.Metadata.DataDate,
		Description:     c.cfg.Metadata.Description,
		NationalAverage: ComputeNationalAverages(records),
		Powiaty:         records,
	}

	c.logger.Debug("Computed national averages",
		zap.Float64("overall", doc.NationalAverage.Overall),
		zap.Float64("male", doc.NationalAverage.Male),
		zap.Float64("female", doc.NationalAverage.Female))

	return doc, nil
}

// BuildRecords maps the data rows of a sheet to DistrictRecords, in sheet
// order. Rows whose name cell is empty are skipped; a whitespace-only name
// is kept as "". stats may be nil.
func (c *Converter) BuildRecords(sheet *xlsxparser.Sheet, stats *ProcessingStats) ([]types.DistrictRecord, error) {
	if stats == nil {
		stats = &ProcessingStats{}
	}

	layout := c.cfg.SheetLayout
	rows := sheet.DataRows(layout.DataStartRow())
	stats.RowsRead = len(rows)

	records := make([]types.DistrictRecord, 0, len(rows))
	for _, row := range rows {
		raw := sheet.RawCell(row, layout.NameColumn)
		if raw == "" {
			stats.SkippedRows++
			c.logger.Debug("Skipping row without name",
				zap.Int("row", row+1),
				zap.Bool("blank", sheet.IsRowEmpty(row)))
			continue
		}
		if len(sheet.Rows[row]) <= layout.MaxColumn() {
			c.logger.Debug("Row is shorter than the layout; missing cells are empty",
				zap.Int("row", row+1),
				zap.Int("cells", len(sheet.Rows[row])))
		}

		name := NormalizeName(raw)
		if name == "" {
			c.logger.Warn("Keeping row with a whitespace-only name", zap.Int("row", row+1))
		}

		record, err := c.buildRecord(sheet, row, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", ErrMalformedSource, sheet.Path, row+1, err)
		}
		if record.Teryt == nil {
			stats.MissingTeryt++
		}
		records = append(records, record)
	}

	stats.RecordsWritten = len(records)
	return records, nil
}

func (c *Converter) buildRecord(sheet *xlsxparser.Sheet, row int, name string) (types.DistrictRecord, error) {
	layout := c.cfg.SheetLayout

	teryt, err := ParseTeryt(sheet.Cell(row, layout.CodeColumn), c.cfg.TerytSuffix)
	if err != nil {
		return types.DistrictRecord{}, fmt.Errorf("code column %d: %w", layout.CodeColumn, err)
	}

	male, err := ParseOptionalFloat(sheet.Cell(row, layout.MaleColumn))
	if err != nil {
		return types.DistrictRecord{}, fmt.Errorf("male average column %d: %w", layout.MaleColumn, err)
	}

	female, err := ParseOptionalFloat(sheet.Cell(row, layout.FemaleColumn))
	if err != nil {
		return types.DistrictRecord{}, fmt.Errorf("female average column %d: %w", layout.FemaleColumn, err)
	}

	return types.DistrictRecord{
		Name:             name,
		Teryt:            teryt,
		AvgPensionMale:   male,
		AvgPensionFemale: female,
	}, nil
}

// sourceName returns the configured source name or the input file's base name.
func (c *Converter) sourceName() string {
	if c.cfg.Metadata.Source != "" {
		return c.cfg.Metadata.Source
	}
	return filepath.Base(c.cfg.InputFile)
}

// =============================================================================
// SUMMARY
// =============================================================================

// Summary converts the result into the summary log structure.
func (r *Result) Summary() utils.ProcessingSummary {
	s := utils.ProcessingSummary{
		RunID:          r.RunID,
		StartTime:      r.Stats.StartTime,
		EndTime:        r.Stats.StartTime.Add(r.Stats.ProcessingTime),
		InputFile:      r.InputFile,
		OutputFile:     r.OutputFile,
		RowsRead:       r.Stats.RowsRead,
		RecordsWritten: r.Stats.RecordsWritten,
		SkippedRows:    r.Stats.SkippedRows,
		MissingTeryt:   r.Stats.MissingTeryt,
	}
	if r.Document != nil {
		s.AverageOverall = r.Document.NationalAverage.Overall
		s.AverageMale = r.Document.NationalAverage.Male
		s.AverageFemale = r.Document.NationalAverage.Female
	}
	if r.Validation != nil {
		for _, e := range r.Validation.Errors {
			s.Warnings = append(s.Warnings, e.Error())
		}
	}
	return s
}
