package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
	"alfredoptarigan/career-fit/internal/models"
)

// ResumeParser turns a resume file on disk into a loosely typed record.
type ResumeParser interface {
	Parse(ctx context.Context, path string) (RawResume, error)
}

type pdfResumeParser struct {
	pdfParser PDFParserService
	now       func() time.Time
}

func NewPDFResumeParser(pdfParser PDFParserService) ResumeParser {
	return &pdfResumeParser{pdfParser: pdfParser, now: time.Now}
}

// Parse implements ResumeParser.
func (p *pdfResumeParser) Parse(ctx context.Context, path string) (RawResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := p.pdfParser.ExtractTextWithMetaData(path)
	if err != nil {
		return nil, err
	}

	return ExtractResumeEntities(content.Text, content.PageCount, p.now()), nil
}

type ResumeExtractor interface {
	// Extract never fails: problems are reported in CandidateRecord.ExtractionError.
	Extract(ctx context.Context, data []byte) models.CandidateRecord
}

type resumeExtractor struct {
	storage StorageService
	parser  ResumeParser
	logger  *zap.Logger
}

func NewResumeExtractor(storage StorageService, parser ResumeParser, log *zap.Logger) ResumeExtractor {
	return &resumeExtractor{
		storage: storage,
		parser:  parser,
		logger:  logger.OrNop(log),
	}
}

// Extract implements ResumeExtractor.
func (e *resumeExtractor) Extract(ctx context.Context, data []byte) (record models.CandidateRecord) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("resume parser panicked", zap.Any("panic", r))
			record = models.EmptyCandidate(fmt.Sprintf("Resume parsing failed: %v", r))
		}
	}()

	var raw RawResume
	err := e.storage.WithTempFile(data, ".pdf", func(path string) error {
		var parseErr error
		raw, parseErr = e.parser.Parse(ctx, path)
		return parseErr
	})
	if err != nil {
		e.logger.Warn("resume parsing failed", zap.Error(err), zap.Int("bytes", len(data)))
		return models.EmptyCandidate(fmt.Sprintf("Resume parsing failed: %v", err))
	}

	if len(raw) == 0 {
		e.logger.Warn("resume parsing returned no data", zap.Int("bytes", len(data)))
		return models.EmptyCandidate("Resume parsing returned no data.")
	}

	record = NormalizeResume(raw)
	e.logger.Debug("parsed resume fields",
		zap.String("name", record.Name),
		zap.Strings("skills", record.Skills),
		zap.Float64("total_experience", record.TotalExperienceYears),
		zap.Int("pages", record.PageCount),
	)
	return record
}

// NormalizeResume coerces a loose parser record into a CandidateRecord.
func NormalizeResume(raw RawResume) models.CandidateRecord {
	name, _ := raw["name"].(string)
	name = strings.TrimSpace(name)

	skills := coerceStrings(raw["skills"])

	experience := coerceText(raw["experience"])
	if experience == "" {
		experience = coerceText(raw["total_experience"])
	}

	years := coerceFloat(raw["total_experience"])
	if math.IsNaN(years) || years < 0 {
		years = 0
	}

	pages := 0
	if p := coerceFloat(raw["no_of_pages"]); !math.IsNaN(p) && p > 0 {
		pages = int(p)
	}

	return models.CandidateRecord{
		Name:                 name,
		Skills:               skills,
		Experience:           experience,
		TotalExperienceYears: years,
		PageCount:            pages,
		FullText:             models.BuildFullText(name, skills, experience),
	}
}

func coerceStrings(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []string:
		for _, s := range val {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	}
	return out
}

// coerceText stringifies experience values: text as is, lists joined,
// numbers rendered as a year count.
func coerceText(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case []string, []any:
		return strings.Join(coerceStrings(val), " ")
	case float64, float32, int, int64:
		f := coerceFloat(val)
		if math.IsNaN(f) || f <= 0 {
			return ""
		}
		return models.FormatYears(f) + " years"
	default:
		return ""
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
