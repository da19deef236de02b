package importer

import "testing"

func TestBuildCorpus(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{"no pages", nil, ""},
		{"single page", []string{"hello"}, "hello"},
		{"pages joined with single space", []string{"page one", "page two"}, "page one page two"},
		{"empty pages preserved in order", []string{"", "text", ""}, " text "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildCorpus(tt.pages); got != tt.want {
				t.Errorf("BuildCorpus() = %q, want %q", got, tt.want)
			}
		})
	}
}
