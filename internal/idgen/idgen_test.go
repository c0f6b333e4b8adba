package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceProvider(t *testing.T) {
	p := NewSequenceProvider()

	assert.Equal(t, "G-1", p.GuestID())
	assert.Equal(t, "G-2", p.GuestID())
	assert.Equal(t, "TX-1", p.TransactionID())
	assert.Equal(t, "O-1", p.OrderID())
	// Each id space counts independently.
	assert.Equal(t, "TX-2", p.TransactionID())
	assert.Equal(t, "G-3", p.GuestID())
}

func TestUUIDProviderPrefixes(t *testing.T) {
	p := NewUUIDProvider()

	assert.True(t, strings.HasPrefix(p.GuestID(), "G-"))
	assert.True(t, strings.HasPrefix(p.TransactionID(), "TX-"))
	assert.True(t, strings.HasPrefix(p.OrderID(), "O-"))
	assert.NotEqual(t, p.GuestID(), p.GuestID())
}
