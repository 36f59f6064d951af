package utils

import (
	"math/rand"
	"strings"
	"unicode"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	idLength   = 6
)

// GenerateID returns a 6 character alphanumeric identifier, used for
// both room and user ids.
func GenerateID() string {
	var sb strings.Builder
	sb.Grow(idLength)
	for i := 0; i < idLength; i++ {
		sb.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return sb.String()
}

// ObfuscateWord masks the word shown to guessers: letters become '*',
// whitespace and punctuation pass through unchanged.
func ObfuscateWord(word string) string {
	var sb strings.Builder
	sb.Grow(len(word))
	for _, r := range word {
		if unicode.IsLetter(r) {
			sb.WriteRune('*')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
