// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetClientIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "key123")

	clientID, ok := GetClientIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "key123", clientID)
}

func TestGetClientIDFromContext_Missing(t *testing.T) {
	clientID, ok := GetClientIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, clientID)
}

func TestGetClientIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, 42)

	_, ok := GetClientIDFromContext(ctx)

	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "clientID", ClientIDCtxKey.String())
}
