package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/finassoc/association_finance_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	occurredAt := time.Date(2025, time.June, 3, 14, 30, 0, 123456789, time.UTC)
	createdAt := time.Date(2025, time.June, 3, 14, 30, 1, 0, time.UTC)
	movementID := "0c9c1b1e-33a4-4ff0-9a70-8be049f4e9a1"

	token := pagination.EncodeToken(occurredAt, createdAt, movementID)
	gotOccurred, gotCreated, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, occurredAt.Equal(gotOccurred))
	assert.True(t, createdAt.Equal(gotCreated))
	assert.Equal(t, movementID, gotID)
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separators.
	_, _, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

func TestDecodeTokenRejectsMissingID(t *testing.T) {
	raw := time.Now().UTC().Format(time.RFC3339Nano) + "|" + time.Now().UTC().Format(time.RFC3339Nano) + "|"
	token := base64.StdEncoding.EncodeToString([]byte(raw))

	_, _, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}
