// Package rnd generates random tokens and unique IDs.
package rnd

import (
	"math/rand"
	"strconv"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"

// UID returns a unique ID with the given type prefix.
func UID(prefix rune) string {
	result := make([]byte, 0, 17)
	result = append(result, byte(prefix))
	result = append(result, strconv.FormatInt(time.Now().UTC().Unix(), 36)...)

	for i := 0; i < 10; i++ {
		result = append(result, charset[rand.Intn(len(charset))])
	}

	return string(result)
}

// IsUID tests if the string is a unique ID with the given type prefix.
func IsUID(s string, prefix rune) bool {
	if len(s) != 17 {
		return false
	}

	if rune(s[0]) != prefix {
		return false
	}

	for _, r := range s[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}

	return true
}
