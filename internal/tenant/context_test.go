package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	requestID, err := FromRequestIDContext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "req-123", requestID)
}

func TestFromRequestIDContext_Missing(t *testing.T) {
	_, err := FromRequestIDContext(context.Background())
	assert.ErrorIs(t, err, ErrNoRequestIDInContext)
}

func TestFromRequestIDContext_Empty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	_, err := FromRequestIDContext(ctx)
	assert.ErrorIs(t, err, ErrNoRequestIDInContext)
}

func TestMustFromRequestIDContext_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustFromRequestIDContext(context.Background())
	})
}
