package bem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  Mode
		want  string
	}{
		{name: "empty", input: "", mode: ModeKebab, want: ""},
		{name: "empty pascal-camel", input: "", mode: ModePascalCamel, want: ""},
		{name: "whitespace only", input: "   ", mode: ModeKebab, want: ""},
		{name: "whitespace only pascal-camel", input: " \t ", mode: ModePascalCamel, want: ""},
		{name: "punctuation only", input: "!!!", mode: ModeKebab, want: ""},

		{name: "already kebab BEM", input: "my-block__my-element--my-modifier", mode: ModeKebab, want: "my-block__my-element--my-modifier"},
		{name: "snake words to pascal-camel", input: "my_block__my_element--my_modifier", mode: ModePascalCamel, want: "MyBlock__myElement--myModifier"},
		{name: "kebab to pascal-camel", input: "my-block__my-element--my-modifier", mode: ModePascalCamel, want: "MyBlock__myElement--myModifier"},
		{name: "pascal-camel to kebab", input: "MyBlock__myElement--myModifier", mode: ModeKebab, want: "my-block__my-element--my-modifier"},
		{name: "spaces stay top-level delimiters", input: "my block__my element--my modifier", mode: ModePascalCamel, want: "My Block__my Element--my Modifier"},
		{name: "dot and space delimiters", input: "Foo.Bar Baz", mode: ModeKebab, want: "foo.bar baz"},
		{name: "class selector list", input: ".card__title--is-active .card__body", mode: ModePascalCamel, want: ".Card__title--isActive .Card__body"},
		{name: "modifier only", input: "button--primaryLarge", mode: ModeKebab, want: "button--primary-large"},

		{name: "trims outer whitespace", input: "  fooBar  ", mode: ModeKebab, want: "foo-bar"},
		{name: "keeps inner whitespace runs", input: "fooBar \t bazQux", mode: ModeKebab, want: "foo-bar \t baz-qux"},
		{name: "unicode space is a delimiter", input: "fooBar\u00a0BazQux", mode: ModeKebab, want: "foo-bar\u00a0baz-qux"},
		{name: "newline is a delimiter", input: "fooBar\nbazQux", mode: ModePascalCamel, want: "FooBar\nBazQux"},

		{name: "leading separator", input: "__foo", mode: ModeKebab, want: "__foo"},
		{name: "leading separator pascal-camel", input: "__foo", mode: ModePascalCamel, want: "__foo"},
		{name: "trailing separator", input: "foo--", mode: ModePascalCamel, want: "Foo--"},
		{name: "three hyphens", input: "a---b", mode: ModeKebab, want: "a--b"},
		{name: "three underscores", input: "a___b", mode: ModePascalCamel, want: "A__b"},
		{name: "separator between delimiters", input: "a . __ . b", mode: ModeKebab, want: "a . __ . b"},
		{name: "adjacent delimiters", input: "a..b", mode: ModeKebab, want: "a..b"},
		{name: "digit element", input: "grid__col 2", mode: ModePascalCamel, want: "Grid__col 2"},
		{name: "digit word inside element", input: "grid__col_2", mode: ModePascalCamel, want: "Grid__col_2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transform(tt.input, tt.mode)
			assert.Equal(t, tt.want, got, "Transform(%q, %s)", tt.input, tt.mode)
		})
	}
}

// markRules wraps every converted piece so tests can see exactly which rule
// was applied where.
type markRules struct{}

func (markRules) Kebab(s string) string  { return "K(" + s + ")" }
func (markRules) Pascal(s string) string { return "P(" + s + ")" }
func (markRules) Camel(s string) string  { return "C(" + s + ")" }

func TestTransformRuleDispatch(t *testing.T) {
	tr := New(markRules{})

	tests := []struct {
		name  string
		input string
		mode  Mode
		want  string
	}{
		{name: "block only", input: "card", mode: ModePascalCamel, want: "P(card)"},
		{name: "block element modifier", input: "a__b--c", mode: ModePascalCamel, want: "P(a)__C(b)--C(c)"},
		{name: "kebab uses one rule", input: "a__b--c", mode: ModeKebab, want: "K(a)__K(b)--K(c)"},
		{name: "each top-level segment restarts at block", input: "a__b.c__d e", mode: ModePascalCamel, want: "P(a)__C(b).P(c)__C(d) P(e)"},
		{name: "empty pieces are still converted", input: "__a", mode: ModePascalCamel, want: "P()__C(a)"},
		{name: "adjacent delimiters give empty segments", input: "a. b", mode: ModeKebab, want: "K(a).K() K(b)"},
		{name: "empty input", input: "", mode: ModeKebab, want: "K()"},
		{name: "unknown mode falls back to kebab", input: "a__b", mode: Mode(42), want: "K(a)__K(b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Transform(tt.input, tt.mode))
		})
	}
}

func TestTransformPreservesDelimiters(t *testing.T) {
	inputs := []string{
		"Foo.Bar Baz",
		"a__b--c.d\te  f",
		".card__title--is-active .card__body--hidden",
		"one\u3000two.three",
	}
	tr := New(markRules{})

	for _, in := range inputs {
		for _, mode := range []Mode{ModeKebab, ModePascalCamel} {
			want := topLevelDelimiter.FindAllString(in, -1)
			out := tr.Transform(in, mode)
			assert.Equal(t, want, topLevelDelimiter.FindAllString(out, -1), "top-level delimiters of %q (%s)", in, mode)
			assert.Equal(t, strings.Count(in, "__"), strings.Count(out, "__"), "__ count of %q (%s)", in, mode)
			assert.Equal(t, strings.Count(in, "--"), strings.Count(out, "--"), "-- count of %q (%s)", in, mode)
		}
	}
}

func TestTransformIdempotent(t *testing.T) {
	inputs := []string{
		"my block__my element--my modifier",
		"my-block__my-element--my-modifier",
		"MyBlock__myElement--myModifier",
		"Foo.Bar Baz",
		"XMLHttpRequest__responseText",
		"grid__col_2--span 3",
		"a---b",
		"a___b",
	}
	for _, in := range inputs {
		for _, mode := range []Mode{ModeKebab, ModePascalCamel} {
			once := Transform(in, mode)
			assert.Equal(t, once, Transform(once, mode), "Transform(%q, %s) should be idempotent", in, mode)
		}
	}
}

func TestNewDefaultsRules(t *testing.T) {
	tr := New(nil)
	assert.Equal(t, "MyBlock__myElement", tr.Transform("my_block__my_element", ModePascalCamel))
	assert.Equal(t, "foo-bar__baz-qux", tr.Transform("fooBar__bazQux", ModeKebab))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "kebab", want: ModeKebab},
		{input: "KEBAB", want: ModeKebab},
		{input: "kebab-bem", want: ModeKebab},
		{input: "pascal-camel", want: ModePascalCamel},
		{input: " Pascal-Camel ", want: ModePascalCamel},
		{input: "pascal", want: ModePascalCamel},
		{input: "camel", want: ModePascalCamel},
		{input: "snake", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "kebab", ModeKebab.String())
	assert.Equal(t, "pascal-camel", ModePascalCamel.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestSplitKeep(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: []string{""}},
		{input: "a", want: []string{"a"}},
		{input: "a.b", want: []string{"a", ".", "b"}},
		{input: ".a", want: []string{"", ".", "a"}},
		{input: "a  b", want: []string{"a", "  ", "b"}},
		{input: "a. b", want: []string{"a", ".", "", " ", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := splitKeep(topLevelDelimiter, tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, strings.Join(got, ""))
		})
	}
}

func TestTransformSingleLetterBlockNotIdempotent(t *testing.T) {
	once := Transform("a-b", ModePascalCamel)
	assert.Equal(t, "AB", once)
	assert.Equal(t, "Ab", Transform(once, ModePascalCamel))
}
