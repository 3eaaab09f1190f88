package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	t.Parallel()

	subject, text, html, err := RenderWelcome(map[string]any{
		"Name":    "Alice",
		"AppName": "blognest",
	})
	require.NoError(t, err)

	assert.Equal(t, "Welcome to blognest", subject)
	assert.Contains(t, text, "Alice")
	assert.Contains(t, html, "Welcome to blognest, Alice!")
}

func TestRenderWelcome_EscapesName(t *testing.T) {
	t.Parallel()

	_, _, html, err := RenderWelcome(map[string]any{
		"Name":    "<script>alert(1)</script>",
		"AppName": "blognest",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
