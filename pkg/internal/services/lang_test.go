package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			DetectLanguage("the quick brown fox jumps over the lazy dog")
		}()
	}
	wg.Wait()

	assert.Equal(t, "EN", DetectLanguage("the quick brown fox jumps over the lazy dog"))
}
