package user

import (
	"context"

	"go-drive/internal/features/file"
)

// accountDirectory adapts the user repository to the catalog's read-only
// identity interface. Backed by the repository directly so the file service
// never depends on the user service.
type accountDirectory struct {
	repo UserRepository
}

func NewAccountDirectory(repo UserRepository) file.AccountDirectory {
	return &accountDirectory{repo: repo}
}

func (d *accountDirectory) ResolveByAccountID(ctx context.Context, accountID string) (*file.Account, error) {
	u, err := d.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, mapRepoErr("resolve account", err)
	}
	return &file.Account{ID: u.ID, AccountID: u.AccountID, Email: u.Email}, nil
}

func (d *accountDirectory) ResolveByEmail(ctx context.Context, email string) (*file.Account, error) {
	u, err := d.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapRepoErr("resolve account", err)
	}
	return &file.Account{ID: u.ID, AccountID: u.AccountID, Email: u.Email}, nil
}
