package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User mirrors the identity provider's account. Created and mutated only by
// the provider's webhooks; the file/quota features read it, never write it.
type User struct {
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	// AccountID is the identity provider's stable external id
	AccountID string    `json:"accountId" bson:"account_id"`
	FullName  string    `json:"fullName" bson:"full_name"`
	Email     string    `json:"email" bson:"email"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
