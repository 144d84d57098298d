package engine

import "testing"

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(circle "c" :radius 5)`,
			expect: `(circle "c" "__kw_radius" 5)`,
		},
		{
			name:   "multiple keywords",
			input:  `(arc "a" :start 0 :end 90)`,
			expect: `(arc "a" "__kw_start" 0 "__kw_end" 90)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "escaped quote in string",
			input:  `"say \"a-b\" :x" :y`,
			expect: `"say \"a-b\" :x" "__kw_y"`,
		},
		{
			name:   "backtick string preserved",
			input:  "`raw :kw a-b`",
			expect: "`raw :kw a-b`",
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def outer-ring 3)`,
			expect: `(def outer_ring 3)`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "negative literal preserved",
			input:  `(vec2 -5 -2.5)`,
			expect: `(vec2 -5 -2.5)`,
		},
		{
			name:   "comment converted to // style",
			input:  ";; comment with :keyword\n(vec2 1 2)",
			expect: "// comment with :keyword\n(vec2 1 2)",
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:inner-radius`,
			expect: `"__kw_inner-radius"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
