package checkout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRedirectFormPostsPayloadSortedByKey(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRedirectForm(&buf, RedirectInstruction{
		URL: "https://pay.example.com/checkout",
		Payload: map[string]string{
			"signature": "abc+/=",
			"amount":    "123.46",
		},
	})
	require.NoError(t, err)

	page := buf.String()
	assert.Contains(t, page, `method="post" action="https://pay.example.com/checkout"`)
	amountAt := strings.Index(page, `name="amount" value="123.46"`)
	signatureAt := strings.Index(page, `name="signature" value="abc&#43;/="`)
	require.NotEqual(t, -1, amountAt)
	require.NotEqual(t, -1, signatureAt)
	assert.Less(t, amountAt, signatureAt)
	assert.Contains(t, page, `document.getElementById("payment-redirect").submit();`)
}

func TestRenderRedirectFormEscapesValues(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRedirectForm(&buf, RedirectInstruction{
		URL:     "https://pay.example.com/checkout",
		Payload: map[string]string{"token": `"><script>alert(1)</script>`},
	})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), "&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestRenderRedirectFormDoesNotURLEncodeValues(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRedirectForm(&buf, RedirectInstruction{
		URL:     "https://pay.example.com/checkout",
		Payload: map[string]string{"token": "a b%20c"},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `value="a b%20c"`)
}

func TestRenderRedirectFormRequiresURL(t *testing.T) {
	var buf bytes.Buffer
	err := RenderRedirectForm(&buf, RedirectInstruction{Payload: map[string]string{"a": "b"}})

	assert.ErrorIs(t, err, ErrMissingURL)
	assert.Zero(t, buf.Len())
}

func TestFieldsOfEmptyPayload(t *testing.T) {
	assert.Empty(t, RedirectInstruction{URL: "https://x"}.Fields())
}
