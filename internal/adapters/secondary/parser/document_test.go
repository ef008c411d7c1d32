package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSON(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, SchemaID, schema["$id"])
	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema["required"], "slides")

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, props, "title")
	assert.Contains(t, props, "subtitle")

	slides, ok := props["slides"].(map[string]interface{})
	require.True(t, ok)
	items, ok := slides["items"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, items["required"], "type")

	itemProps, ok := items["properties"].(map[string]interface{})
	require.True(t, ok)
	typ, ok := itemProps["type"].(map[string]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"content", "text", "image"}, typ["enum"])
}
