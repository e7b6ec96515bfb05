package rnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUID(t *testing.T) {
	uid := UID('s')

	assert.Len(t, uid, 17)
	assert.Equal(t, byte('s'), uid[0])
	assert.NotEqual(t, uid, UID('s'))
}

func TestIsUID(t *testing.T) {
	assert.True(t, IsUID(UID('c'), 'c'))
	assert.False(t, IsUID(UID('c'), 's'))
	assert.False(t, IsUID("", 's'))
	assert.False(t, IsUID("s123", 's'))
	assert.False(t, IsUID("sABCDEFGHIJKLMNOP", 's'))
}
