package polyscout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/polyscout"
)

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	t.Run("resolves each entry to its variant", func(t *testing.T) {
		t.Parallel()

		doc := `{
			"gone": {"exclude": true},
			"replaced": {"replace": true, "fallbacks": [{"type": "polyfill", "url": "https://example.com/r"}]},
			"confirmed-empty": {"replace": true, "fallbacks": []},
			"augmented": {"fallbacks": [{"type": "code", "url": "https://example.com/snippet"}]},
			"noop": {}
		}`

		overrides, err := polyscout.ParseOverrides([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, polyscout.OverrideExclude, overrides["gone"].Kind)

		require.Equal(t, polyscout.OverrideReplace, overrides["replaced"].Kind)
		require.Len(t, overrides["replaced"].Fallbacks, 1)
		assert.Equal(t, "https://example.com/r", overrides["replaced"].Fallbacks[0].URL)

		assert.Equal(t, polyscout.OverrideReplace, overrides["confirmed-empty"].Kind)
		assert.Empty(t, overrides["confirmed-empty"].Fallbacks)

		require.Equal(t, polyscout.OverrideAugment, overrides["augmented"].Kind)
		assert.Equal(t, polyscout.FallbackTypeCode, overrides["augmented"].Fallbacks[0].Type)

		assert.Equal(t, polyscout.OverrideNone, overrides["noop"].Kind)
	})

	t.Run("exclude wins over other fields", func(t *testing.T) {
		t.Parallel()

		doc := `{"both": {"exclude": true, "replace": true, "fallbacks": [{"url": "https://example.com"}]}}`

		overrides, err := polyscout.ParseOverrides([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, polyscout.OverrideExclude, overrides["both"].Kind)
		assert.Empty(t, overrides["both"].Fallbacks)
	})

	t.Run("ignores underscore-prefixed comment keys", func(t *testing.T) {
		t.Parallel()

		doc := `{
			"_comment": {"anything": "goes here"},
			"real": {"exclude": true}
		}`

		overrides, err := polyscout.ParseOverrides([]byte(doc))
		require.NoError(t, err)

		assert.NotContains(t, overrides, "_comment")
		assert.Contains(t, overrides, "real")
	})

	t.Run("defaults omitted fallback type to polyfill", func(t *testing.T) {
		t.Parallel()

		doc := `{"feature": {"fallbacks": [{"url": "https://example.com/p"}]}}`

		overrides, err := polyscout.ParseOverrides([]byte(doc))
		require.NoError(t, err)

		assert.Equal(t, polyscout.FallbackTypePolyfill, overrides["feature"].Fallbacks[0].Type)
	})

	t.Run("malformed document fails hard instead of degrading to empty", func(t *testing.T) {
		t.Parallel()

		_, err := polyscout.ParseOverrides([]byte(`{"feature": {`))

		require.Error(t, err)
		assert.Equal(t, polyscout.EINVALID, polyscout.ErrorCode(err))
	})

	t.Run("malformed entry names the feature", func(t *testing.T) {
		t.Parallel()

		_, err := polyscout.ParseOverrides([]byte(`{"bad": {"fallbacks": "nope"}}`))

		require.Error(t, err)
		assert.Equal(t, polyscout.EINVALID, polyscout.ErrorCode(err))
		assert.Contains(t, polyscout.ErrorMessage(err), `"bad"`)
	})
}
