package file

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-drive/internal/common/apperr"
	"go-drive/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AccountDirectory resolves external account identities. Implemented by the
// user feature; this service never writes identity attributes.
type AccountDirectory interface {
	ResolveByAccountID(ctx context.Context, accountID string) (*Account, error)
	ResolveByEmail(ctx context.Context, email string) (*Account, error)
}

type FileService interface {
	BeginUpload(ctx context.Context) (*storage.UploadTarget, error)
	CreateFile(ctx context.Context, ownerID primitive.ObjectID, accountID, name string, size *int64, storageKey string) (*File, error)
	ListFiles(ctx context.Context, accountID, typeFilter, searchText string) ([]*File, error)
	RenameFile(ctx context.Context, callerAccountID, fileID, newBaseName, extension string) error
	DeleteFile(ctx context.Context, callerAccountID, fileID, storageKey string) error
	ShareFile(ctx context.Context, callerAccountID, fileID string, emails []string) error
	UnshareFile(ctx context.Context, callerAccountID, fileID, accountID string) error
	CascadeDeleteForOwner(ctx context.Context, ownerID primitive.ObjectID) error
}

type FileServiceImpl struct {
	FileRepo  FileRepository
	Store     storage.ObjectStore
	Directory AccountDirectory
	Logger    *zap.Logger
}

func NewFileService(fileRepo FileRepository, store storage.ObjectStore, directory AccountDirectory, logger *zap.Logger) FileService {
	return &FileServiceImpl{
		FileRepo:  fileRepo,
		Store:     store,
		Directory: directory,
		Logger:    logger,
	}
}

func (s *FileServiceImpl) BeginUpload(ctx context.Context) (*storage.UploadTarget, error) {
	target, err := s.Store.BeginUpload(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin upload: %w", apperr.ErrStorageUnavailable)
	}
	return target, nil
}

// CreateFile registers metadata for a committed upload. The object URL is
// resolved exactly once, before the insert: a storage key the store cannot
// resolve never produces a metadata record.
func (s *FileServiceImpl) CreateFile(ctx context.Context, ownerID primitive.ObjectID, accountID, name string, size *int64, storageKey string) (*File, error) {
	url, err := s.Store.ResolveURL(ctx, storageKey)
	if err != nil {
		s.Logger.Error("object url resolution failed",
			zap.String("storageKey", storageKey), zap.Error(err))
		return nil, fmt.Errorf("resolve url for %s: %w", storageKey, apperr.ErrStorageUnavailable)
	}

	fileType, extension := GetFileType(name)

	record := &File{
		Name:       name,
		Extension:  extension,
		Type:       fileType,
		Size:       size,
		URL:        url,
		StorageKey: storageKey,
		OwnerID:    ownerID,
		AccountID:  accountID,
		SharedWith: []string{},
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.FileRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save file metadata: %w", err)
	}
	return record, nil
}

// ListFiles returns the caller's owned files followed by files shared with
// the caller. The two sets are disjoint by construction: shared candidates
// exclude the caller's own account id, and SharedWith never contains the
// owner.
func (s *FileServiceImpl) ListFiles(ctx context.Context, accountID, typeFilter, searchText string) ([]*File, error) {
	types := ResolveTypeFilter(typeFilter)

	owned, err := s.FileRepo.FindOwned(ctx, accountID, types, searchText)
	if err != nil {
		return nil, fmt.Errorf("list owned files: %w", err)
	}

	shared, err := s.FileRepo.FindSharedWith(ctx, accountID, types, searchText)
	if err != nil {
		return nil, fmt.Errorf("list shared files: %w", err)
	}

	return append(owned, shared...), nil
}

func (s *FileServiceImpl) RenameFile(ctx context.Context, callerAccountID, fileID, newBaseName, extension string) error {
	if _, err := s.getOwned(ctx, callerAccountID, fileID); err != nil {
		return err
	}

	name := newBaseName
	if extension != "" {
		name = newBaseName + "." + extension
	}

	if err := s.FileRepo.UpdateName(ctx, fileID, name, extension); err != nil {
		return mapRepoErr("rename file", err)
	}
	return nil
}

// DeleteFile removes the payload first, then the metadata. When the store
// delete fails the metadata stays; an orphaned object is recoverable, a
// dangling metadata record pointing at nothing is not.
func (s *FileServiceImpl) DeleteFile(ctx context.Context, callerAccountID, fileID, storageKey string) error {
	record, err := s.getOwned(ctx, callerAccountID, fileID)
	if err != nil {
		return err
	}

	if storageKey == "" {
		storageKey = record.StorageKey
	}

	if err := s.Store.Delete(ctx, storageKey); err != nil {
		s.Logger.Error("object delete failed, keeping metadata",
			zap.String("fileId", fileID), zap.String("storageKey", storageKey), zap.Error(err))
		return fmt.Errorf("delete object %s: %w", storageKey, apperr.ErrStorageUnavailable)
	}

	if err := s.FileRepo.Delete(ctx, fileID); err != nil {
		return mapRepoErr("delete file metadata", err)
	}
	return nil
}

// ShareFile grants read access to the accounts behind the given emails.
// Unresolvable emails are skipped so one unknown address never fails the
// batch. The union itself happens inside the store as one patch, so a
// grant racing another grant or a revoke on the same file cannot lose
// either committed update.
func (s *FileServiceImpl) ShareFile(ctx context.Context, callerAccountID, fileID string, emails []string) error {
	record, err := s.getOwned(ctx, callerAccountID, fileID)
	if err != nil {
		return err
	}

	resolved := make([]string, 0, len(emails))
	for _, email := range emails {
		account, err := s.Directory.ResolveByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				s.Logger.Debug("skipping unknown share invitee", zap.String("email", email))
				continue
			}
			return fmt.Errorf("resolve invitee %s: %w", email, err)
		}
		resolved = append(resolved, account.AccountID)
	}

	grants := dedupeGrants(resolved, record.AccountID)
	if len(grants) == 0 {
		// Nothing resolved (or only the owner): an idempotent no-op
		return nil
	}

	if err := s.FileRepo.AddSharedWith(ctx, fileID, grants); err != nil {
		return mapRepoErr("update shared set", err)
	}
	return nil
}

// UnshareFile revokes access for one account. Revoking a non-member is a
// no-op, not an error.
func (s *FileServiceImpl) UnshareFile(ctx context.Context, callerAccountID, fileID, accountID string) error {
	if _, err := s.getOwned(ctx, callerAccountID, fileID); err != nil {
		return err
	}

	if err := s.FileRepo.RemoveSharedWith(ctx, fileID, accountID); err != nil {
		return mapRepoErr("update shared set", err)
	}
	return nil
}

// CascadeDeleteForOwner removes every file owned by the given user, payload
// and metadata both. Used only by account deletion.
func (s *FileServiceImpl) CascadeDeleteForOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	files, err := s.FileRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list files for owner: %w", err)
	}

	for _, f := range files {
		if err := s.Store.Delete(ctx, f.StorageKey); err != nil {
			return fmt.Errorf("delete object %s: %w", f.StorageKey, apperr.ErrStorageUnavailable)
		}
		if err := s.FileRepo.Delete(ctx, f.ID.Hex()); err != nil {
			return mapRepoErr("delete file metadata", err)
		}
	}
	return nil
}

// getOwned loads a file and verifies the caller owns it. Mutations are
// owner-only; shared accounts get read visibility through ListFiles.
func (s *FileServiceImpl) getOwned(ctx context.Context, callerAccountID, fileID string) (*File, error) {
	record, err := s.FileRepo.Get(ctx, fileID)
	if err != nil {
		return nil, mapRepoErr("get file", err)
	}
	if record.AccountID != callerAccountID {
		return nil, fmt.Errorf("file %s: %w", fileID, apperr.ErrUnauthorized)
	}
	return record, nil
}

// dedupeGrants drops duplicates and the owner's own account id from a
// grant batch. The store-side union handles overlap with the existing set.
func dedupeGrants(granted []string, ownerAccountID string) []string {
	seen := make(map[string]bool, len(granted))
	out := make([]string, 0, len(granted))
	for _, id := range granted {
		if id == ownerAccountID || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func mapRepoErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
