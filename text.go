package main

import (
	"strings"
	"unicode"
)

type SentenceStats struct {
	Keystrokes int
	Alphabetic int
	Numeric    int
	Vowels     int
}

func CountSentence(s string) SentenceStats {
	var st SentenceStats
	for _, r := range s {
		st.Keystrokes++
		if unicode.IsLetter(r) {
			st.Alphabetic++
		}
		if unicode.IsNumber(r) {
			st.Numeric++
		}
		if strings.ContainsRune("aeiou", unicode.ToLower(r)) {
			st.Vowels++
		}
	}
	return st
}

// CleanPalindrome keeps lower-cased letters and digits.
func CleanPalindrome(line string) (string, error) {
	var b strings.Builder
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return "", &ValidationError{Kind: NoInput, Subject: "characters"}
	}
	return b.String(), nil
}

func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
