package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/polyscout/mock"
	"github.com/fwojciec/polyscout/pipeline"
)

func TestCompositeSlugSource_Slugs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mapping := map[string][]string{
		"dialog": {"Web/HTML/Element/dialog"},
	}
	fallback := &mock.SlugSource{
		SlugsFn: func(ctx context.Context, featureID string) ([]string, error) {
			if featureID == "urlpattern" {
				return []string{"Web/API/URLPattern"}, nil
			}
			return nil, nil
		},
	}

	source := pipeline.NewCompositeSlugSource(mapping, fallback)

	t.Run("curated mapping takes priority", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "dialog")
		require.NoError(t, err)
		assert.Equal(t, []string{"Web/HTML/Element/dialog"}, slugs)
	})

	t.Run("falls back to the compat-derived source", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "urlpattern")
		require.NoError(t, err)
		assert.Equal(t, []string{"Web/API/URLPattern"}, slugs)
	})

	t.Run("absent from both yields zero slugs", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "array-group")
		require.NoError(t, err)
		assert.Empty(t, slugs)
	})

	t.Run("nil fallback consults only the mapping", func(t *testing.T) {
		t.Parallel()

		source := pipeline.NewCompositeSlugSource(mapping, nil)
		slugs, err := source.Slugs(ctx, "urlpattern")
		require.NoError(t, err)
		assert.Empty(t, slugs)
	})
}
