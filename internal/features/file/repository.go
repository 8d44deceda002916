package file

import (
	"context"
	"regexp"

	"go-drive/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FileRepository interface {
	Save(ctx context.Context, file *File) error
	Get(ctx context.Context, id string) (*File, error)
	UpdateName(ctx context.Context, id, name, extension string) error
	AddSharedWith(ctx context.Context, id string, accountIDs []string) error
	RemoveSharedWith(ctx context.Context, id, accountID string) error
	Delete(ctx context.Context, id string) error
	FindOwned(ctx context.Context, accountID string, types []FileType, searchText string) ([]*File, error)
	FindSharedWith(ctx context.Context, accountID string, types []FileType, searchText string) ([]*File, error)
	FindByAccountID(ctx context.Context, accountID string) ([]*File, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*File, error)
	EnsureIndexes(ctx context.Context) error
}

type FileRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewFileRepository(mongodb *database.MongodbDB) FileRepository {
	return &FileRepositoryImpl{
		Collection: mongodb.DB.Collection("files"),
	}
}

func (r *FileRepositoryImpl) Save(ctx context.Context, file *File) error {
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, file)
	return err
}

func (r *FileRepositoryImpl) Get(ctx context.Context, id string) (*File, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var file File
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&file)
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *FileRepositoryImpl) UpdateName(ctx context.Context, id, name, extension string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"name": name, "extension": extension},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddSharedWith unions the given account ids into the shared set as a
// single server-side patch. Concurrent grants and revokes on the same file
// serialize inside the store, so a racing write never erases a committed
// grant.
func (r *FileRepositoryImpl) AddSharedWith(ctx context.Context, id string, accountIDs []string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$addToSet": bson.M{"shared_with": bson.M{"$each": accountIDs}},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *FileRepositoryImpl) RemoveSharedWith(ctx context.Context, id, accountID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"shared_with": accountID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *FileRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// listFilter builds the shared type/search conditions for list queries.
func listFilter(types []FileType, searchText string) bson.M {
	filter := bson.M{}
	if len(types) > 0 {
		filter["type"] = bson.M{"$in": types}
	}
	if searchText != "" {
		// Quote the input so metacharacters stay a literal substring match
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(searchText), Options: "i"}}
	}
	return filter
}

func (r *FileRepositoryImpl) FindOwned(ctx context.Context, accountID string, types []FileType, searchText string) ([]*File, error) {
	filter := listFilter(types, searchText)
	filter["account_id"] = accountID
	return r.find(ctx, filter)
}

func (r *FileRepositoryImpl) FindSharedWith(ctx context.Context, accountID string, types []FileType, searchText string) ([]*File, error) {
	filter := listFilter(types, searchText)
	filter["account_id"] = bson.M{"$ne": accountID}
	filter["shared_with"] = accountID
	return r.find(ctx, filter)
}

func (r *FileRepositoryImpl) FindByAccountID(ctx context.Context, accountID string) ([]*File, error) {
	return r.find(ctx, bson.M{"account_id": accountID})
}

func (r *FileRepositoryImpl) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*File, error) {
	return r.find(ctx, bson.M{"owner_id": ownerID})
}

func (r *FileRepositoryImpl) find(ctx context.Context, filter bson.M) ([]*File, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
		{Keys: bson.D{{Key: "shared_with", Value: 1}}},
		{
			Keys:    bson.D{{Key: "name", Value: "text"}},
			Options: options.Index().SetName("name_text"),
		},
	})
	return err
}
