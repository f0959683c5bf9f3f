package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	fenced := "```json\n{\"valid\": true, \"violations\": []}\n```"
	assert.Equal(t, `{"valid": true, "violations": []}`, extractJSON(fenced))

	prose := `Here is my verdict: {"valid": false, "violations": ["gap at 1100"]} hope that helps`
	var verdict validatorVerdict
	require.NoError(t, json.Unmarshal([]byte(extractJSON(prose)), &verdict))
	assert.False(t, verdict.Valid)
	assert.Equal(t, []string{"gap at 1100"}, verdict.Violations)

	// Nothing brace-delimited passes through untouched.
	assert.Equal(t, "no json here", extractJSON("no json here"))
}
