package util

import (
	"maps"
	"slices"
	"strings"
)

// DefaultLanguageToExt maps programming language names to file extensions.
var DefaultLanguageToExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c++":        "cpp",
	"c":          "c",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"php":        "php",
	"markdown":   "md",
	"dotenv":     "env",
	"json":       "json",
	"yaml":       "yaml",
	"xml":        "xml",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
	"toml":       "toml",
	"go":         "go",
	"ruby":       "rb",
	"rust":       "rs",
	"perl":       "pl",
	"swift":      "swift",
	"kotlin":     "kt",
	"sql":        "sql",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"graphql":    "graphql",
	"r":          "r",
	"dart":       "dart",
	"scala":      "scala",
	"groovy":     "groovy",
}

// extToLanguage resolves an extension used as a language tag ("py") back to
// its language name. When several languages share an extension the
// alphabetically first one wins.
var extToLanguage = func() map[string]string {
	m := make(map[string]string, len(DefaultLanguageToExt))
	for _, lang := range slices.Sorted(maps.Keys(DefaultLanguageToExt)) {
		ext := DefaultLanguageToExt[lang]
		if _, ok := m[ext]; !ok && ext != lang {
			m[ext] = lang
		}
	}
	return m
}()

// NormalizeLanguage cleans up the language of a pre entity for use in
// markup: only the first comma-separated field is kept, a "language-"
// prefix is dropped, and extension-style aliases are resolved to the
// language name. Unknown languages are returned lowercased.
func NormalizeLanguage(language string) string {
	language, _, _ = strings.Cut(language, ",")
	language = strings.ToLower(strings.TrimSpace(language))
	language = strings.TrimPrefix(language, "language-")
	if lang, ok := extToLanguage[language]; ok {
		return lang
	}
	return language
}
