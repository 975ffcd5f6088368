package encryption

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSealOpenRoundTrip(t *testing.T) {
	key := []byte("correct horse battery staple")
	plaintext := []byte("super-secret-token")

	envelope, err := Seal(key, plaintext)
	require.NoError(t, err)
	require.NotContains(t, string(envelope), "super-secret-token")

	decrypted, err := Open(key, envelope)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestOpenWithWrongKeyFails(t *testing.T) {
	envelope, err := Seal([]byte("key-a"), []byte("data"))
	require.NoError(t, err)

	_, err = Open([]byte("key-b"), envelope)
	require.Error(t, err)
}

func TestSealProducesDistinctEnvelopesForSamePlaintext(t *testing.T) {
	key := []byte("key")
	a, err := Seal(key, []byte("same"))
	require.NoError(t, err)
	b, err := Seal(key, []byte("same"))
	require.NoError(t, err)
	require.NotEqual(t, a, b, "fresh salt and nonce must randomize each envelope")
}

func TestOpenRejectsMalformedEnvelope(t *testing.T) {
	_, err := Open([]byte("key"), Envelope("not-a-valid-envelope"))
	require.Error(t, err)
}
