package store

import (
	"errors"

	"SecureEHealth/config/db"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no document matches a lookup.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert hits a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// Mongo implements every store interface the services consume.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(database *mongo.Database) *Mongo {
	return &Mongo{db: database}
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case db.IsNotFound(err):
		return ErrNotFound
	case db.IsDuplicateKey(err):
		return ErrDuplicate
	default:
		return err
	}
}
