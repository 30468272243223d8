package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name  string `json:"name" jsonschema:"required,description=Target name"`
	Count int    `json:"count" jsonschema:"description=How many"`
	Level string `json:"level" jsonschema:"enum=low,enum=high"`
}

func TestGenerate(t *testing.T) {
	got := Generate[sampleInput]()

	assert.Equal(t, []string{"name"}, got.Required)

	props, ok := got.Properties.(map[string]any)
	require.True(t, ok)

	name, ok := props["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "Target name", name["description"])

	count, ok := props["count"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", count["type"])
	assert.Equal(t, "How many", count["description"])

	level, ok := props["level"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, level["enum"], 2)
}

func TestGenerate_EmptyStruct(t *testing.T) {
	type empty struct{}

	got := Generate[empty]()

	assert.Empty(t, got.Required)
}
