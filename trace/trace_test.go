package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}

func TestRequestIDAbsent(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "", RequestIDFromContext(nil))
}

func TestGenerateIDUnique(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
