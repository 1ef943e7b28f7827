package engine

import (
	"slices"
	"testing"
)

func TestGenerateSearchKeywords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"hyphenated with punctuation", "Semi-Skimmed Milk!", []string{"semi", "skimmed", "milk", "semi skimmed milk"}},
		{"single word", "Milk", []string{"milk"}},
		{"repeated token", "Rice Rice", []string{"rice", "rice rice"}},
		{"digits kept", "Coke 330ml", []string{"coke", "330ml", "coke 330ml"}},
		{"only punctuation", "!!!", nil},
		{"extra whitespace", "  Olive   Oil  ", []string{"olive", "oil", "olive oil"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSearchKeywords(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("GenerateSearchKeywords(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
