package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

func DetectLanguage(content string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})

	if lang, ok := languageDetector.DetectLanguageOf(content); ok {
		return lang.IsoCode639_1().String()
	}
	return ""
}
