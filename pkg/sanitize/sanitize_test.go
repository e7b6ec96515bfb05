package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.Equal(t, "''", Log(""))
	assert.Equal(t, "'filename.jpg'", Log("filename.jpg"))
	assert.Equal(t, "'a?b'", Log("a`b"))
	assert.Equal(t, "'a?b?c'", Log("a\nb\tc"))
}
