// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Attention Is All You Need", "attention_is_all_you_need"},
		{"punctuation collapsed", "BERT: Pre-training of Deep Bidirectional Transformers", "bert_pre_training_of_deep_bidirectional_transformers"},
		{"diacritics folded", "Schrödinger's Cat Revisited", "schrodinger_s_cat_revisited"},
		{"mixed separators", "a--b__c  d", "a_b_c_d"},
		{"leading and trailing junk", "  (Draft) Results!  ", "draft_results"},
		{"digits kept", "GPT-4 Technical Report", "gpt_4_technical_report"},
		{"no alphanumerics", "!!! ***", ""},
		{"empty", "", ""},
		{"cjk drops to empty", "量子計算", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Attention Is All You Need",
		"Schrödinger's Cat Revisited",
		"a--b__c  d",
	}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSlugifyLengthCap(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := Slugify(long)
	if len(got) > slugMaxLen {
		t.Errorf("Slugify() length = %d, want <= %d", len(got), slugMaxLen)
	}
	if strings.HasSuffix(got, "_") {
		t.Errorf("Slugify() = %q, should not end with a separator after truncation", got)
	}
}
