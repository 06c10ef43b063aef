package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeIDToken(t *testing.T) {
	for _, id := range []int64{0, 1, 42, 9_007_199_254_740_993} {
		token := EncodeIDToken(id)
		assert.NotEmpty(t, token, "Token should not be empty")

		decoded, err := DecodeIDToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeIDTokenError(t *testing.T) {
	_, err := DecodeIDToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, err = DecodeIDToken(base64.URLEncoding.EncodeToString([]byte("2024-01-01|x")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prefix")

	_, err = DecodeIDToken(base64.URLEncoding.EncodeToString([]byte("id:abc")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestNextToken(t *testing.T) {
	assert.Nil(t, NextToken(3, 0, 10), "Unlimited listings have no next page")
	assert.Nil(t, NextToken(3, 5, 10), "Short page is the last page")

	next := NextToken(5, 5, 10)
	require.NotNil(t, next)
	id, err := DecodeIDToken(*next)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}
