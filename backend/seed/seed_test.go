package seed

import (
	"context"
	"testing"

	"eduplus/backend/repository"
	"eduplus/backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsRepeatable(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := repository.NewCourseRepository(db)

	first, err := Run(ctx, repo)
	require.NoError(t, err)
	require.Len(t, first, len(SampleCourses()))
	for _, r := range first {
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.Omitido)
	}

	second, err := Run(ctx, repo)
	require.NoError(t, err)
	for i, r := range second {
		assert.True(t, r.Omitido)
		assert.Equal(t, first[i].ID, r.ID)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, all[0].Titulo, all[0].Nombre)
}
