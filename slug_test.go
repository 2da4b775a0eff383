package polyscout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/polyscout"
)

func TestCompatSlugSource_Slugs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	features := map[string]polyscout.Feature{
		"intersection-observer": {
			ID:             "intersection-observer",
			CompatFeatures: []string{"api.IntersectionObserver", "api.IntersectionObserver.observe"},
		},
		"array-group": {ID: "array-group"},
		"dangling":    {ID: "dangling", CompatFeatures: []string{"api.Missing.entirely"}},
		"undocumented": {
			ID:             "undocumented",
			CompatFeatures: []string{"api.NoDocs"},
		},
	}
	data := polyscout.CompatData{
		"api": map[string]any{
			"IntersectionObserver": map[string]any{
				"__compat": map[string]any{
					"mdn_url": "https://developer.mozilla.org/docs/Web/API/IntersectionObserver",
				},
			},
			"NoDocs": map[string]any{
				"__compat": map[string]any{},
			},
		},
	}

	source := polyscout.NewCompatSlugSource(features, data)

	t.Run("derives one slug from the first compat key", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "intersection-observer")
		require.NoError(t, err)
		assert.Equal(t, []string{"Web/API/IntersectionObserver"}, slugs)
	})

	t.Run("feature without compat keys yields zero slugs", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "array-group")
		require.NoError(t, err)
		assert.Empty(t, slugs)
	})

	t.Run("key absent from the tree yields zero slugs", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "dangling")
		require.NoError(t, err)
		assert.Empty(t, slugs)
	})

	t.Run("terminal node without mdn_url yields zero slugs", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "undocumented")
		require.NoError(t, err)
		assert.Empty(t, slugs)
	})

	t.Run("unknown feature yields zero slugs", func(t *testing.T) {
		t.Parallel()

		slugs, err := source.Slugs(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Empty(t, slugs)
	})
}

func TestSlugFromDocURL(t *testing.T) {
	t.Parallel()

	t.Run("strips the documentation root", func(t *testing.T) {
		t.Parallel()

		slug, ok := polyscout.SlugFromDocURL("https://developer.mozilla.org/docs/Web/API/URLPattern")
		require.True(t, ok)
		assert.Equal(t, "Web/API/URLPattern", slug)
	})

	t.Run("normalizes locale-prefixed urls", func(t *testing.T) {
		t.Parallel()

		slug, ok := polyscout.SlugFromDocURL("https://developer.mozilla.org/en-US/docs/Web/API/URLPattern")
		require.True(t, ok)
		assert.Equal(t, "Web/API/URLPattern", slug)
	})

	t.Run("rejects foreign hosts", func(t *testing.T) {
		t.Parallel()

		_, ok := polyscout.SlugFromDocURL("https://example.com/docs/Web/API/URLPattern")
		assert.False(t, ok)
	})
}
