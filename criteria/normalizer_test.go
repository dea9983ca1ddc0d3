package criteria

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FullPayload(t *testing.T) {
	n := NewNormalizer()

	payload := `{
		"sectors": ["tech", "semiconductors"],
		"fees_max": 0.5,
		"min_performance": 3,
		"region": ["europe"],
		"type": ["equity"],
		"replication": "physical",
		"availability": ["France", "Germany"],
		"risk": 4,
		"strategy": "growth",
		"esg": 60,
		"emetteur": ["Amundi"]
	}`

	c := n.Normalize(payload)
	assert.Equal(t, []string{"tech", "semiconductors"}, c.Sectors)
	require.NotNil(t, c.FeesMax)
	assert.Equal(t, 0.5, *c.FeesMax)
	require.NotNil(t, c.MinPerformance)
	assert.Equal(t, 3.0, *c.MinPerformance)
	assert.Equal(t, []string{"europe"}, c.Region)
	assert.Equal(t, []string{"equity"}, c.Type)
	assert.Equal(t, "physical", c.Replication)
	assert.Equal(t, []string{"France", "Germany"}, c.Availability)
	require.NotNil(t, c.Risk)
	assert.Equal(t, 4, *c.Risk)
	assert.Equal(t, "growth", c.Strategy)
	require.NotNil(t, c.ESG)
	assert.Equal(t, 60.0, *c.ESG)
	assert.Equal(t, []string{"Amundi"}, c.Issuers)
}

func TestNormalize_MalformedInput(t *testing.T) {
	n := NewNormalizer()

	t.Run("unparseable text", func(t *testing.T) {
		assert.Equal(t, Defaults(), n.Normalize("the model rambled instead of emitting JSON"))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Equal(t, Defaults(), n.Normalize(""))
	})

	t.Run("JSON array instead of object", func(t *testing.T) {
		assert.Equal(t, Defaults(), n.Normalize(`["tech"]`))
	})

	t.Run("nil payload", func(t *testing.T) {
		assert.Equal(t, Defaults(), n.Normalize(nil))
	})

	t.Run("unsupported payload type", func(t *testing.T) {
		assert.Equal(t, Defaults(), n.Normalize(42))
	})

	t.Run("empty object gives all defaults", func(t *testing.T) {
		c := n.Normalize(`{}`)
		assert.Equal(t, Defaults(), c)
		assert.True(t, c.IsUnconstrained())
	})
}

func TestNormalize_InputShapes(t *testing.T) {
	n := NewNormalizer()

	t.Run("already-structured map", func(t *testing.T) {
		c := n.Normalize(map[string]any{
			"sectors":  []any{"tech"},
			"fees_max": 0.3,
		})
		assert.Equal(t, []string{"tech"}, c.Sectors)
		require.NotNil(t, c.FeesMax)
		assert.Equal(t, 0.3, *c.FeesMax)
	})

	t.Run("byte slice", func(t *testing.T) {
		c := n.Normalize([]byte(`{"risk": 2}`))
		require.NotNil(t, c.Risk)
		assert.Equal(t, 2, *c.Risk)
	})

	t.Run("raw message", func(t *testing.T) {
		c := n.Normalize(json.RawMessage(`{"strategy": "dividend"}`))
		assert.Equal(t, "dividend", c.Strategy)
	})

	t.Run("code-fenced payload", func(t *testing.T) {
		c := n.Normalize("```json\n{\"sectors\": [\"esg\"]}\n```")
		assert.Equal(t, []string{"esg"}, c.Sectors)
	})
}

func TestNormalize_FieldCoercion(t *testing.T) {
	n := NewNormalizer()

	t.Run("wrong-typed sequences become empty", func(t *testing.T) {
		c := n.Normalize(`{"sectors": "tech", "region": 7}`)
		assert.Empty(t, c.Sectors)
		assert.Empty(t, c.Region)
	})

	t.Run("non-string sequence elements are dropped", func(t *testing.T) {
		c := n.Normalize(`{"sectors": ["tech", 3, null]}`)
		assert.Equal(t, []string{"tech"}, c.Sectors)
	})

	t.Run("numeric strings are coerced", func(t *testing.T) {
		c := n.Normalize(`{"fees_max": "0.5", "risk": "3"}`)
		require.NotNil(t, c.FeesMax)
		assert.Equal(t, 0.5, *c.FeesMax)
		require.NotNil(t, c.Risk)
		assert.Equal(t, 3, *c.Risk)
	})

	t.Run("non-coercible numerics become nil", func(t *testing.T) {
		c := n.Normalize(`{"fees_max": "cheap", "min_performance": true}`)
		assert.Nil(t, c.FeesMax)
		assert.Nil(t, c.MinPerformance)
	})

	t.Run("fractional risk is discarded", func(t *testing.T) {
		c := n.Normalize(`{"risk": 3.5}`)
		assert.Nil(t, c.Risk)
	})

	t.Run("zero esg threshold is preserved", func(t *testing.T) {
		c := n.Normalize(`{"esg": 0}`)
		require.NotNil(t, c.ESG)
		assert.Equal(t, 0.0, *c.ESG)
	})

	t.Run("wrong-typed scalars become empty", func(t *testing.T) {
		c := n.Normalize(`{"replication": 1, "strategy": ["growth"]}`)
		assert.Empty(t, c.Replication)
		assert.Empty(t, c.Strategy)
	})

	t.Run("unrecognized keys are ignored", func(t *testing.T) {
		c := n.Normalize(`{"keywords": ["tech"], "intent": "esg"}`)
		assert.Equal(t, Defaults(), c)
	})
}

func TestNormalize_NeverConstrainedByGarbage(t *testing.T) {
	n := NewNormalizer()

	// Whatever the payload looks like, a failed parse must behave as
	// "no filter", never as an error visible to the match engine.
	for _, payload := range []string{
		"{",
		"null",
		"[]",
		`"just a string"`,
		"```\nnot json\n```",
	} {
		c := n.Normalize(payload)
		assert.True(t, c.IsUnconstrained(), "payload %q", payload)
	}
}
