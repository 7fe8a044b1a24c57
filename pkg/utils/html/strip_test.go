package html

import "testing"

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "  Markets rallied   on Friday. ", "Markets rallied on Friday."},
		{"inline tags", "The <strong>Senate</strong> passed the <em>bill</em>.", "The Senate passed the bill."},
		{"entities", "Ben &amp; Jerry&#8217;s &quot;new&quot; flavor", "Ben & Jerry’s \"new\" flavor"},
		{"script removed", "Hello<script>alert('x')</script> world", "Hello world"},
		{"block elements separate words", "<p>First</p><p>Second</p>", "First Second"},
		{"line breaks", "one<br>two<br/>three", "one two three"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.input); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("\ta \n\n b  "); got != "a b" {
		t.Errorf("CollapseWhitespace = %q, want %q", got, "a b")
	}
}
