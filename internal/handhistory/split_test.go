package handhistory

import "testing"

func TestSplitHands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "single hand",
			input: "line one\nline two\n",
			want:  []string{"line one\nline two"},
		},
		{
			name:  "two hands blank separated",
			input: "hand a 1\nhand a 2\n\nhand b 1\nhand b 2",
			want:  []string{"hand a 1\nhand a 2", "hand b 1\nhand b 2"},
		},
		{
			name:  "blank line runs collapse",
			input: "hand a\n\n\n\n\nhand b\n",
			want:  []string{"hand a", "hand b"},
		},
		{
			name:  "whitespace only separator",
			input: "hand a\n   \t\nhand b",
			want:  []string{"hand a", "hand b"},
		},
		{
			name:  "leading and trailing blanks",
			input: "\n\nhand a\n\n",
			want:  []string{"hand a"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only whitespace",
			input: "\n \n\t\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitHands(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitHands() returned %d hands, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("hand %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
