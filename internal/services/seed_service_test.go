package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/internal/models"
)

type fakeSeeder struct {
	rows  int
	calls int
}

func (f *fakeSeeder) SeedDefaults(ctx context.Context, projects []models.Project) (int, error) {
	f.calls++
	if f.rows > 0 {
		return 0, nil
	}
	f.rows = len(projects)
	return f.rows, nil
}

func TestSeedServiceIsIdempotent(t *testing.T) {
	seeder := &fakeSeeder{}
	svc := NewSeedService(seeder, zap.NewNop())

	require.NoError(t, svc.Run(context.Background()))
	assert.Equal(t, len(SampleProjects()), seeder.rows)

	require.NoError(t, svc.Run(context.Background()))
	assert.Equal(t, len(SampleProjects()), seeder.rows, "second run must not add rows")
	assert.Equal(t, 2, seeder.calls)
}

func TestSampleProjectsShape(t *testing.T) {
	samples := SampleProjects()
	require.Len(t, samples, 6)

	for _, p := range samples {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Description)
		require.NotNil(t, p.Link)
		assert.Contains(t, *p.Link, "https://")
		assert.Nil(t, p.Image)
	}
}
