package pipeline

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

type Parser struct {
	log     *slog.Logger
	files   <-chan string
	batches chan<- *domain.ReturnsBatch
}

func NewParser(log *slog.Logger, files <-chan string, batches chan<- *domain.ReturnsBatch) *Parser {
	return &Parser{
		log:     log,
		files:   files,
		batches: batches,
	}
}

func (p *Parser) Run(ctx context.Context) error {
	defer close(p.batches)

	for {
		select {
		case filename, ok := <-p.files:
			if !ok {
				return nil
			}

			p.log.DebugContext(ctx, "received file to parse", slog.String("filename", filename))

			gstin, _ := GSTINFromFilename(filepath.Base(filename))

			info, err := p.ParseFile(filename)
			if err != nil {
				p.log.ErrorContext(ctx, "failed to parse returns file", slog.String("err", err.Error()))
			}

			batch := &domain.ReturnsBatch{
				Filename: filename,
				GSTIN:    gstin,
				Info:     info,
				Error:    err,
			}

			select {
			case p.batches <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ParseFile decodes one returns file, JSON or TSV by extension.
func (p *Parser) ParseFile(filename string) (_ *domain.ReturnsInfo, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if filepath.Ext(filename) == extJSON {
		return p.parseJSON(f)
	}

	return p.parseTSV(f)
}

// parseJSON decodes the portal response as is: {"EFiledlist": [...]}.
func (p *Parser) parseJSON(r io.Reader) (*domain.ReturnsInfo, error) {
	var info domain.ReturnsInfo
	if err := json.NewDecoder(r).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode returns json: %w", err)
	}

	if err := validateReturns(info.EFiledList); err != nil {
		return nil, err
	}

	p.log.Debug("successfully parsed returns", slog.Int("returns_count", len(info.EFiledList)))

	return &info, nil
}

func (p *Parser) parseTSV(r io.Reader) (*domain.ReturnsInfo, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'

	dec, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		return &domain.ReturnsInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	p.log.Debug("parsing returns records")

	var returns []domain.ReturnInfo
	for {
		var ret domain.ReturnInfo

		err := dec.Decode(&ret)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode returns record: %w", err)
		}

		returns = append(returns, ret)
	}

	if err := validateReturns(returns); err != nil {
		return nil, err
	}

	p.log.Debug("successfully parsed returns", slog.Int("returns_count", len(returns)))

	return &domain.ReturnsInfo{EFiledList: returns}, nil
}

func validateReturns(returns []domain.ReturnInfo) error {
	for i := range returns {
		if err := returns[i].Validate(); err != nil {
			return fmt.Errorf("invalid returns record #%d: %w", i+1, err)
		}
	}

	return nil
}
