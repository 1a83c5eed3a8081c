package usertags

import (
	"errors"
	"time"

	"graphsense-dashboard/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrUserTagNotFound = errors.New("user tag not found")
	ErrInvalidID       = errors.New("invalid user tag id")
)

type UserTag struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	Currency string             `json:"currency" bson:"currency"`
	Address  string             `json:"address" bson:"address"`
	Label    string             `json:"label" bson:"label"`
	Source   string             `json:"source,omitempty" bson:"source,omitempty"`
	Category string             `json:"category,omitempty" bson:"category,omitempty"`
	Abuse    string             `json:"abuse,omitempty" bson:"abuse,omitempty"`

	Lastmod time.Time `json:"lastmod" bson:"lastmod"`
}

func NewUserTag(currency storage.Currency, address, label string) (*UserTag, error) {
	if currency == "" {
		return nil, errors.New("invalid currency")
	}
	if address == "" {
		return nil, errors.New("invalid address")
	}
	if label == "" {
		return nil, errors.New("invalid label")
	}

	return &UserTag{
		ID:       primitive.NewObjectID(),
		Currency: currency.String(),
		Address:  address,
		Label:    label,
		Lastmod:  time.Now().UTC().Truncate(time.Millisecond),
	}, nil
}
