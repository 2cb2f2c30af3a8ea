package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopback(t *testing.T) {
	assert.Equal(t, "127.0.0.1", loopback("0.0.0.0"))
	assert.Equal(t, "127.0.0.1", loopback(""))
	assert.Equal(t, "127.0.0.1", loopback("::"))
	assert.Equal(t, "fonts.internal", loopback("fonts.internal"))
}
