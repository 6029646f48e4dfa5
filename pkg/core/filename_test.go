package core

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Spaces To Underscores",
			input: "Hello World",
			want:  "Hello_World",
		},
		{
			name:  "Drops Punctuation",
			input: "Hello World! 2024",
			want:  "Hello_World_2024",
		},
		{
			name:  "Already Sanitized",
			input: "Hello_World_2024",
			want:  "Hello_World_2024",
		},
		{
			name:  "Unicode Removed",
			input: "café 42",
			want:  "caf_42",
		},
		{
			name:  "Everything Invalid",
			input: "!!!",
			want:  "",
		},
		{
			name:  "Empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Idempotence: sanitizing the result must not change it.
			if again := Sanitize(got); again != got {
				t.Errorf("Sanitize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	t.Run("Uses Title Field", func(t *testing.T) {
		rec := Record{Fields: []Field{
			{Name: "title", Value: ScalarValue("My First Note!")},
		}}
		if got := Filename(rec, 1); got != "My_First_Note.md" {
			t.Errorf("Filename() = %q, want %q", got, "My_First_Note.md")
		}
	})

	t.Run("Falls Back To Position", func(t *testing.T) {
		rec := Record{Fields: []Field{
			{Name: "body", Value: ScalarValue("no title here")},
		}}
		if got := Filename(rec, 3); got != "entry_3.md" {
			t.Errorf("Filename() = %q, want %q", got, "entry_3.md")
		}
	})

	t.Run("Empty Sanitized Title Falls Back", func(t *testing.T) {
		rec := Record{Fields: []Field{
			{Name: "title", Value: ScalarValue("???")},
		}}
		if got := Filename(rec, 7); got != "entry_7.md" {
			t.Errorf("Filename() = %q, want %q", got, "entry_7.md")
		}
	})

	t.Run("Sequence Title Is Ignored", func(t *testing.T) {
		rec := Record{Fields: []Field{
			{Name: "title", Value: SequenceValue([]string{"a", "b"})},
		}}
		if got := Filename(rec, 2); got != "entry_2.md" {
			t.Errorf("Filename() = %q, want %q", got, "entry_2.md")
		}
	})
}
