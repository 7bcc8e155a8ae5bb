package memory

import (
	"context"

	"github.com/artem13815/smartparking/pkg/owner"
)

// OwnerRepository serves a fixed owner set from memory. It is read-only, so
// concurrent requests need no locking.
type OwnerRepository struct {
	owners []owner.Owner
}

// NewOwnerRepository validates the set and keeps a private copy of it.
func NewOwnerRepository(owners []owner.Owner) (*OwnerRepository, error) {
	if err := owner.Validate(owners); err != nil {
		return nil, err
	}
	return &OwnerRepository{owners: clone(owners)}, nil
}

func (r *OwnerRepository) List(ctx context.Context) ([]owner.Owner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return clone(r.owners), nil
}

func clone(in []owner.Owner) []owner.Owner {
	out := make([]owner.Owner, len(in))
	copy(out, in)
	return out
}
