package quota

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-drive/internal/common/apperr"
	"go-drive/internal/config"
	"go-drive/internal/features/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFileRepo struct {
	file.FileRepository
	files []*file.File
}

func (f *fakeFileRepo) FindByAccountID(ctx context.Context, accountID string) ([]*file.File, error) {
	var out []*file.File
	for _, record := range f.files {
		if record.AccountID == accountID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeDirectory struct {
	known map[string]bool
}

func (d *fakeDirectory) ResolveByAccountID(ctx context.Context, accountID string) (*file.Account, error) {
	if !d.known[accountID] {
		return nil, fmt.Errorf("resolve account: %w", apperr.ErrNotFound)
	}
	return &file.Account{ID: primitive.NewObjectID(), AccountID: accountID}, nil
}

func (d *fakeDirectory) ResolveByEmail(ctx context.Context, email string) (*file.Account, error) {
	return nil, fmt.Errorf("resolve account: %w", apperr.ErrNotFound)
}

func newTestService(repo *fakeFileRepo, quotaBytes int64, accounts ...string) QuotaService {
	known := map[string]bool{}
	for _, a := range accounts {
		known[a] = true
	}
	return NewQuotaService(repo, &fakeDirectory{known: known}, &config.Config{QuotaBytes: quotaBytes})
}

func seed(repo *fakeFileRepo, accountID string, t file.FileType, size int64, createdAt time.Time) {
	repo.files = append(repo.files, &file.File{
		ID:        primitive.NewObjectID(),
		Name:      "f",
		Type:      t,
		Size:      &size,
		AccountID: accountID,
		CreatedAt: createdAt,
	})
}

func TestSummarize(t *testing.T) {
	repo := &fakeFileRepo{}
	svc := newTestService(repo, 1<<30, "acc-1")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed(repo, "acc-1", file.FileTypeImage, 10, base)
	seed(repo, "acc-1", file.FileTypeImage, 20, base.Add(2*time.Hour))
	seed(repo, "acc-1", file.FileTypeImage, 30, base.Add(time.Hour))
	seed(repo, "acc-2", file.FileTypeImage, 999, base) // another account

	report, err := svc.Summarize(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.Equal(t, int64(60), report.Image.Size)
	assert.Equal(t, base.Add(2*time.Hour), report.Image.LatestDate)
	assert.Equal(t, int64(60), report.Used)
	assert.Equal(t, int64(1<<30), report.All)

	assert.Zero(t, report.Document.Size)
	assert.Zero(t, report.Video.Size)
	assert.Zero(t, report.Audio.Size)
	assert.Zero(t, report.Other.Size)
	assert.True(t, report.Document.LatestDate.IsZero())
}

func TestSummarize_PerTypeBuckets(t *testing.T) {
	repo := &fakeFileRepo{}
	svc := newTestService(repo, 1<<30, "acc-1")

	now := time.Now().UTC()
	seed(repo, "acc-1", file.FileTypeDocument, 1, now)
	seed(repo, "acc-1", file.FileTypeImage, 2, now)
	seed(repo, "acc-1", file.FileTypeVideo, 3, now)
	seed(repo, "acc-1", file.FileTypeAudio, 4, now)
	seed(repo, "acc-1", file.FileTypeOther, 5, now)

	report, err := svc.Summarize(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), report.Document.Size)
	assert.Equal(t, int64(2), report.Image.Size)
	assert.Equal(t, int64(3), report.Video.Size)
	assert.Equal(t, int64(4), report.Audio.Size)
	assert.Equal(t, int64(5), report.Other.Size)
	assert.Equal(t, int64(15), report.Used)
}

func TestSummarize_NilSizeCountsAsZero(t *testing.T) {
	repo := &fakeFileRepo{}
	svc := newTestService(repo, 1<<30, "acc-1")

	now := time.Now().UTC()
	repo.files = append(repo.files, &file.File{
		ID:        primitive.NewObjectID(),
		Name:      "empty.txt",
		Type:      file.FileTypeDocument,
		AccountID: "acc-1",
		CreatedAt: now,
	})

	report, err := svc.Summarize(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.Zero(t, report.Document.Size)
	assert.Zero(t, report.Used)
	assert.Equal(t, now, report.Document.LatestDate, "a zero-size file still moves the latest date")
}

func TestSummarize_UnknownAccount(t *testing.T) {
	svc := newTestService(&fakeFileRepo{}, 1<<30)

	_, err := svc.Summarize(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
