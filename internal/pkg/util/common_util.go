package util

// TruncateRunes cuts s down to at most n runes without splitting a
// multi-byte character.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// PtrString converts a non-empty string to *string, empty to nil.
func PtrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// PtrInt converts an int to *int.
func PtrInt(i int) *int {
	return &i
}
