package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/artem13815/smartparking/pkg/owner"
)

func TestOwnerRepository_ListFixture(t *testing.T) {
	repo, err := NewOwnerRepository(owner.Fixture)
	require.NoError(t, err)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []owner.Owner{{ID: 1, Name: "Alice"}}, got)
}

func TestOwnerRepository_ListReturnsCopy(t *testing.T) {
	src := []owner.Owner{{ID: 1, Name: "Alice"}}
	repo, err := NewOwnerRepository(src)
	require.NoError(t, err)

	src[0].Name = "Mallory"
	got, err := repo.List(context.Background())
	require.NoError(t, err)
	got[0].Name = "Eve"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Alice", again[0].Name)
}

func TestOwnerRepository_RejectsInvalidSet(t *testing.T) {
	_, err := NewOwnerRepository([]owner.Owner{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}})
	require.Error(t, err)
}

func TestOwnerRepository_CanceledContext(t *testing.T) {
	repo, err := NewOwnerRepository(owner.Fixture)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
