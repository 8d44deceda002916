package file

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FileType is the coarse media category derived from the file extension.
type FileType string

const (
	FileTypeDocument FileType = "document"
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeOther    FileType = "other"
)

type File struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	// Extension is derived from Name at create time, never user-supplied
	Extension string   `json:"extension,omitempty" bson:"extension,omitempty"`
	Type      FileType `json:"type" bson:"type"`
	// Size is nil for zero-byte or unknown-size uploads
	Size       *int64             `json:"size,omitempty" bson:"size,omitempty"`
	URL        string             `json:"url" bson:"url"`
	StorageKey string             `json:"storageKey" bson:"storage_key"`
	OwnerID    primitive.ObjectID `json:"ownerId" bson:"owner_id"`
	// AccountID duplicates the owner's external account id for filter efficiency
	AccountID string `json:"accountId" bson:"account_id"`
	// SharedWith holds external account ids; never contains AccountID
	SharedWith []string  `json:"sharedWith" bson:"shared_with"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}

// Account is the slice of the user record this feature needs when resolving
// share invitations and file owners.
type Account struct {
	ID        primitive.ObjectID
	AccountID string
	Email     string
}
