package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPoolIsUsable(t *testing.T) {
	require.GreaterOrEqual(t, len(pool), 3)
	for _, word := range pool {
		assert.NotEmpty(t, word)
	}
}

func TestGetThreeWordsDistinct(t *testing.T) {
	for i := 0; i < len(pool)/3; i++ {
		words := GetThreeWords()
		assert.NotEqual(t, words[0], words[1])
		assert.NotEqual(t, words[0], words[2])
		assert.NotEqual(t, words[1], words[2])
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	contents := "ocean,12\nforest,7\nbadcount,x\ndesert,3\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	original := pool
	defer func() {
		mu.Lock()
		pool = original
		mu.Unlock()
	}()

	require.NoError(t, LoadCSV(path))
	assert.ElementsMatch(t, []string{"ocean", "forest", "desert"}, pool)
}

func TestLoadCSVRejectsTinyPools(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("solo,1\n"), 0o644))
	assert.Error(t, LoadCSV(path))

	assert.Error(t, LoadCSV(filepath.Join(t.TempDir(), "missing.csv")))
}
