package owner

import "context"

// Owner is a parking-space owner listed by the directory.
type Owner struct {
	ID   int
	Name string
}

// Repository is the read port for owners.
type Repository interface {
	List(ctx context.Context) ([]Owner, error)
}
