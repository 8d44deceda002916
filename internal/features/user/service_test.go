package user

import (
	"context"
	"testing"

	"go-drive/internal/common/apperr"
	"go-drive/internal/features/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type fakeUserRepo struct {
	UserRepository
	users []*User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByAccountID(ctx context.Context, accountID string) (*User, error) {
	for _, u := range r.users {
		if u.AccountID == accountID {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, accountID, email, avatar string) error {
	for _, u := range r.users {
		if u.AccountID == accountID {
			u.Email = email
			u.Avatar = avatar
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeFileService struct {
	file.FileService
	cascaded []primitive.ObjectID
}

func (s *fakeFileService) CascadeDeleteForOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	s.cascaded = append(s.cascaded, ownerID)
	return nil
}

func TestUserLifecycle(t *testing.T) {
	repo := &fakeUserRepo{}
	files := &fakeFileService{}
	svc := NewUserService(repo, files, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.CreateUser(ctx, "acc-1", "alice@example.com", "Alice", "http://img/alice.png"))

	u, err := svc.GetByAccountID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.FullName)
	assert.Equal(t, "alice@example.com", u.Email)

	require.NoError(t, svc.UpdateUser(ctx, "acc-1", "alice@new.example.com", "http://img/new.png"))
	u, err = svc.GetByAccountID(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@new.example.com", u.Email)
	assert.Equal(t, "Alice", u.FullName, "full name is untouched by profile updates")

	ownerID := u.ID
	require.NoError(t, svc.DeleteUser(ctx, "acc-1"))
	assert.Equal(t, []primitive.ObjectID{ownerID}, files.cascaded, "owned files are deleted before the user record")

	_, err = svc.GetByAccountID(ctx, "acc-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteUser_Unknown(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeFileService{}, zap.NewNop())

	err := svc.DeleteUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAccountDirectory(t *testing.T) {
	repo := &fakeUserRepo{}
	dir := NewAccountDirectory(repo)
	ctx := context.Background()

	repo.users = append(repo.users, &User{
		ID:        primitive.NewObjectID(),
		AccountID: "acc-bob",
		Email:     "bob@example.com",
		FullName:  "Bob",
	})

	account, err := dir.ResolveByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "acc-bob", account.AccountID)

	account, err = dir.ResolveByAccountID(ctx, "acc-bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", account.Email)

	_, err = dir.ResolveByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
