package usecase

import (
	"errors"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
)

// ErrEntityNotFound: no record matches the id at all.
// ErrEntityForbidden: the record exists but falls outside the caller's
// ownership scope. Update and delete must never conflate the two.
var (
	ErrEntityNotFound  = errors.New("entity not found")
	ErrEntityForbidden = errors.New("entity belongs to another owner")
)

type FindEntitiesRepository interface {
	Find(col models.Collection, owner string, filters map[string]interface{}, sort string, limit int64) ([]map[string]interface{}, error)
}

type FindEntityByIdRepository interface {
	FindById(col models.Collection, owner string, id string) (map[string]interface{}, error)
}

type CreateEntitiesRepository interface {
	Create(col models.Collection, docs []map[string]interface{}) ([]map[string]interface{}, error)
}

type UpdateEntityRepository interface {
	Update(col models.Collection, owner string, id string, fields map[string]interface{}) (map[string]interface{}, error)
}

type DeleteEntityRepository interface {
	Delete(col models.Collection, owner string, id string) error
}

// ResolveEffectiveOwner maps a caller to the owner key whose data they see:
// their own email, or the inviter's when an accepted sharing mapping
// delegates them. Never errors; lookup failures fall open to the caller's
// own email.
type ResolveEffectiveOwnerRepository interface {
	Resolve(email string, collection string) string
}
