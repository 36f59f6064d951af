package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		assert.Len(t, id, 6)
		for _, r := range id {
			alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			assert.True(t, alnum, "unexpected rune %q in id %q", r, id)
		}
		seen[id] = true
	}
	// 100 draws from a 62^6 space colliding down to a handful would
	// mean a broken generator.
	assert.Greater(t, len(seen), 90)
}

func TestObfuscateWord(t *testing.T) {
	assert.Equal(t, "***** *****", ObfuscateWord("hello world"))
	assert.Equal(t, "", ObfuscateWord(""))
	assert.Equal(t, "***-**", ObfuscateWord("ice-ax"))
	assert.Equal(t, "****", ObfuscateWord("über"))
	assert.Equal(t, "123!", ObfuscateWord("123!"))
}
