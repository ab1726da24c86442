package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBodyEmbedsMessage(t *testing.T) {
	body, err := renderBody("Your restock order shipped")
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "Your restock order shipped")
	assert.Contains(t, html, "PavLTD - Inventory Management")
}

func TestRenderBodyEscapesHTML(t *testing.T) {
	body, err := renderBody(`<script>alert("x")</script>`)
	require.NoError(t, err)

	html := string(body)
	assert.False(t, strings.Contains(html, "<script>"))
	assert.Contains(t, html, "&lt;script&gt;")
}
