package util

import (
	"reflect"
	"strings"
	"testing"
)

func TestSearchTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only short words",
			input: "ab cd ef",
			want:  []string{},
		},
		{
			name:  "lowercases and splits on punctuation",
			input: "Batarya, hızlı-şarjda ISINIYOR!",
			want:  []string{"batarya", "hızlı", "şarjda", "isiniyor"},
		},
		{
			name:  "turkish letters survive",
			input: "kapı kolu açılmıyor",
			want:  []string{"kapı", "kolu", "açılmıyor"},
		},
		{
			name:  "duplicates collapse in scan order",
			input: "şarj istasyonunda AC şarj başlamıyor",
			want:  []string{"şarj", "istasyonunda", "başlamıyor"},
		},
		{
			name:  "digits are token runes",
			input: "22kw AC kutusu v2x",
			want:  []string{"22kw", "kutusu", "v2x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchTokens(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchTokens(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSearchTokensCap(t *testing.T) {
	words := make([]string, 0, 20)
	for r := 'a'; r < 'a'+20; r++ {
		words = append(words, strings.Repeat(string(r), 3))
	}
	got := SearchTokens(strings.Join(words, " "))
	if len(got) != 12 {
		t.Fatalf("expected 12 tokens, got %d: %v", len(got), got)
	}
	if got[0] != "aaa" || got[11] != "lll" {
		t.Errorf("expected first 12 words in order, got %v", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("şarjörü", 4); got != "şarj" {
		t.Errorf("TruncateRunes = %q, want %q", got, "şarj")
	}
	if got := TruncateRunes("kısa", 10); got != "kısa" {
		t.Errorf("TruncateRunes should keep short strings intact, got %q", got)
	}
	if got := TruncateRunes("metin", 0); got != "" {
		t.Errorf("TruncateRunes with zero length should return empty, got %q", got)
	}
}
