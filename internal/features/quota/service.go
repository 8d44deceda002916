package quota

import (
	"context"
	"fmt"

	"go-drive/internal/config"
	"go-drive/internal/features/file"
)

type QuotaService interface {
	Summarize(ctx context.Context, accountID string) (*QuotaReport, error)
}

type QuotaServiceImpl struct {
	FileRepo  file.FileRepository
	Directory file.AccountDirectory
	Config    *config.Config
}

func NewQuotaService(fileRepo file.FileRepository, directory file.AccountDirectory, cfg *config.Config) QuotaService {
	return &QuotaServiceImpl{
		FileRepo:  fileRepo,
		Directory: directory,
		Config:    cfg,
	}
}

// Summarize scans the account's owned files and accumulates per-type byte
// totals and the most recent upload time per type. Shared files never
// count against the caller. The scan is lockless: a concurrent create or
// delete can make the snapshot stale by one file, which is acceptable for
// a dashboard read.
func (s *QuotaServiceImpl) Summarize(ctx context.Context, accountID string) (*QuotaReport, error) {
	if _, err := s.Directory.ResolveByAccountID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("summarize quota: %w", err)
	}

	files, err := s.FileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("scan owned files: %w", err)
	}

	report := &QuotaReport{All: s.Config.QuotaBytes}

	for _, f := range files {
		var size int64
		if f.Size != nil {
			size = *f.Size
		}

		usage := report.bucket(f.Type)
		usage.Size += size
		report.Used += size

		// Ties keep the earlier-seen value
		if f.CreatedAt.After(usage.LatestDate) {
			usage.LatestDate = f.CreatedAt
		}
	}

	return report, nil
}

// bucket returns the accumulator for a file type. The switch covers every
// enum value; anything unexpected lands in Other, matching the extension
// mapping's fallback.
func (r *QuotaReport) bucket(t file.FileType) *TypeUsage {
	switch t {
	case file.FileTypeDocument:
		return &r.Document
	case file.FileTypeImage:
		return &r.Image
	case file.FileTypeVideo:
		return &r.Video
	case file.FileTypeAudio:
		return &r.Audio
	case file.FileTypeOther:
		return &r.Other
	default:
		return &r.Other
	}
}
