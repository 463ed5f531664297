package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/01moynul/flordelima-golang/internal/models"
)

// translate maps driver errors onto the store sentinels in models.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return models.ErrDuplicate
	}
	return err
}
