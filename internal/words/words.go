// Package words owns the pool of drawable words. The default pool is
// compiled in; a CSV file in word,count format can replace it at
// startup.
package words

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:embed words.txt
var embedded string

var (
	mu   sync.RWMutex
	pool = parseEmbedded()
)

func parseEmbedded() []string {
	var out []string
	for _, line := range strings.Split(embedded, "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			out = append(out, word)
		}
	}
	return out
}

// LoadCSV replaces the pool with words read from a word,count CSV
// file. The count column is kept for compatibility with existing word
// lists; rows with an unparsable count are skipped.
func LoadCSV(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open words file: %w", err)
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	records, err := csvReader.ReadAll()
	if err != nil {
		return fmt.Errorf("parse words file: %w", err)
	}

	var loaded []string
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		if _, err := strconv.Atoi(record[1]); err != nil {
			log.Printf("[LoadCSV] invalid count %q for word %q, skipping", record[1], record[0])
			continue
		}
		word := strings.TrimSpace(record[0])
		if word != "" {
			loaded = append(loaded, word)
		}
	}
	if len(loaded) < 3 {
		return fmt.Errorf("words file %s has %d usable words, need at least 3", filePath, len(loaded))
	}

	mu.Lock()
	pool = loaded
	mu.Unlock()
	log.Printf("[LoadCSV] loaded %d words from %s", len(loaded), filePath)
	return nil
}

// GetRandomWord returns one word from the pool.
func GetRandomWord() string {
	mu.RLock()
	defer mu.RUnlock()
	return pool[rand.Intn(len(pool))]
}

// GetThreeWords returns three distinct candidate words for a drawer to
// pick from.
func GetThreeWords() [3]string {
	var picked []string
	for len(picked) != 3 {
		word := GetRandomWord()
		duplicate := false
		for _, p := range picked {
			if p == word {
				duplicate = true
				break
			}
		}
		if !duplicate {
			picked = append(picked, word)
		}
	}
	return [3]string{picked[0], picked[1], picked[2]}
}
