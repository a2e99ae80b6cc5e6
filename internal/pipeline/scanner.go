package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/gst_compliance/internal/domain"
)

const (
	extJSON = ".json"
	extTSV  = ".tsv"
)

type Scanner struct {
	log           *slog.Logger
	watchDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		watchDir:      watchDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	filesMap, err := s.extractFilesFromDB(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	for _, entry := range entries {
		err := s.processEntry(ctx, entry, filesMap)
		if err != nil {
			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	return nil
}

func (s *Scanner) extractFilesFromDB(ctx context.Context) (map[string]domain.ImportStatus, error) {
	files, err := s.filesProvider.ImportFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get import files: %w", err)
	}

	filesMap := make(map[string]domain.ImportStatus, len(files))
	for _, file := range files {
		filesMap[file.Name] = file.Status
	}

	return filesMap, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, filesMap map[string]domain.ImportStatus) error {
	if entry.IsDir() {
		return nil
	}

	gstin, ok := GSTINFromFilename(entry.Name())
	if !ok {
		return nil
	}

	status, ok := filesMap[entry.Name()]
	if ok && status != domain.ImportStatusPending {
		return nil
	}

	err := s.fileUpdater.UpsertImportFile(ctx, &domain.ImportFile{
		Name:   entry.Name(),
		GSTIN:  gstin,
		Status: domain.ImportStatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "updated file status to processing", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.watchDir, entry.Name()):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

// GSTINFromFilename extracts the GSTIN of a returns file named
// "<gstin>_<anything>.json" or "<gstin>_<anything>.tsv".
func GSTINFromFilename(name string) (string, bool) {
	ext := filepath.Ext(name)
	if ext != extJSON && ext != extTSV {
		return "", false
	}

	gstin, _, ok := strings.Cut(name, "_")
	if !ok || gstin == "" {
		return "", false
	}

	return gstin, true
}
