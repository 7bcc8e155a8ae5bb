package owner

import (
	"context"
	"fmt"
)

// UseCase exposes the owner directory to the transport layer.
type UseCase interface {
	List(ctx context.Context) ([]Owner, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Owner, error) {
	owners, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return owners, nil
}

// ErrValidation is returned when an owner set breaks the directory invariants.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Validate checks that every id is positive and unique.
func Validate(owners []Owner) error {
	seen := make(map[int]struct{}, len(owners))
	for _, o := range owners {
		if o.ID <= 0 {
			return ErrValidation(fmt.Sprintf("owner id must be positive, got %d", o.ID))
		}
		if _, dup := seen[o.ID]; dup {
			return ErrValidation(fmt.Sprintf("duplicate owner id %d", o.ID))
		}
		seen[o.ID] = struct{}{}
	}
	return nil
}
