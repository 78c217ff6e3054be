package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

func IsWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func IsDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func IsUppercaseLetter(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func Pretty(obj interface{}) string {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&obj); err != nil {
		return fmt.Sprint(obj)
	}
	return string(buf.String())
}

func BaseFileName(path string) string {
	fname := filepath.Base(path)
	n := strings.LastIndex(fname, ".")
	if n < 1 {
		return fname
	}
	return fname[:n]
}

// SplitString cuts s into parts of at most maxLength runes. The empty string
// yields a single empty part.
func SplitString(s string, maxLength int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var parts []string
	for offset := 0; offset < len(runes); offset += maxLength {
		end := offset + maxLength
		if end > len(runes) {
			end = len(runes)
		}
		parts = append(parts, string(runes[offset:end]))
	}
	return parts
}
