package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"restaurantBackoffice/internal/modules/staff/domain"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/shared/apperr"
)

func TestRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(docstore.NewMemoryStore())

	created, err := repo.Create(ctx, domain.CreateMemberInput{Name: "Sam", Role: "Host"})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultStatus, created.Status)
	require.Len(t, created.ID, 36)

	inactive := "inactive"
	updated, err := repo.Update(ctx, created.ID, domain.MemberPatch{Status: &inactive})
	require.NoError(t, err)
	require.Equal(t, "inactive", updated.Status)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	_, err = repo.Update(ctx, "missing", domain.MemberPatch{})
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.EqualError(t, err, "Staff member not found")
}
