// ABOUTME: Tests for title normalization
// ABOUTME: Validates width folding, diacritics, whitespace rules and marker stripping

package catalog

import "testing"

func TestTitleKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Evans", "evans"},
		{"case folded", "EVANS", "evans"},
		{"edges trimmed", "  Evans  ", "evans"},
		{"variant marker stripped", "Evans [2]", "evans"},
		{"full-width exclamation", "ＩＮ ＴＨＥ ＺＯＮＥ！", "ｉｎ ｔｈｅ ｚｏｎｅ!"},
		{"full-width space", "true　love", "true love"},
		{"full-width tilde", "Ｆｌｏｗ ～恋の花～", "ｆｌｏｗ~恋の花~"},
		{"wave dash", "Flow 〜koi no hana〜", "flow~koi no hana~"},
		{"curly apostrophe", "I’m so Happy", "i'm so happy"},
		{"curly double quotes", "“Sinfonia”", `"sinfonia"`},
		{"interpunct removed", "Ha・lle・lu・jah", "hallelujah"},
		{"middle dot removed", "l·u·v", "luv"},
		{"heart removed", "秘密がーる♡乙女", "秘密がーる乙女"},
		{"stars removed", "Ryu☆ vs kors k★", "ryu vs kors k"},
		{"roman numeral two", "STELLAR WIND Ⅱ", "stellar wind ii"},
		{"roman numerals one and three", "ChapterⅠ toⅢ", "chapteri toiii"},
		{"acute accent", "Café de Tweet", "cafe de tweet"},
		{"grave and circumflex", "Tièmpo è Crèpe", "tiempo e crepe"},
		{"whitespace collapsed", "a  b\t c", "a b c"},
		{"space inside parens", "Snow ( again )", "snow (again)"},
		{"space inside brackets", "mix [ long ]", "mix [long]"},
		{"hyphen spacing", "Eternal - Blaze", "eternal-blaze"},
		{"trailing hyphen space", "neu- ", "neu-"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleKey(tt.input); got != tt.want {
				t.Errorf("TitleKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleKeyVariantSharesKey(t *testing.T) {
	// The [2] chart of a song resolves against the same index entry as
	// the primary chart
	if TitleKey("Evans [2]") != TitleKey("Evans") {
		t.Errorf("Variant key %q differs from primary key %q", TitleKey("Evans [2]"), TitleKey("Evans"))
	}
}

func TestTitleKeyFoldedSourcesAgree(t *testing.T) {
	// An index built from a tagged soundtrack rip and a catalog export
	// disagree in width, case and quote style; keys must still match
	pairs := [][2]string{
		{"ＡＬＢＩＤＡ", "ＡＬＢＩＤＡ"},
		{"I’M SO HAPPY", "I'm so Happy"},
		{"Évans", "Evans"},
		{"Snow Goose ", "snow goose"},
		{"Ha・lle・lu・jah", "Hallelujah"},
		{"STELLAR WIND Ⅱ", "stellar wind ii"},
	}

	for _, p := range pairs {
		if TitleKey(p[0]) != TitleKey(p[1]) {
			t.Errorf("TitleKey(%q) = %q, TitleKey(%q) = %q; want equal",
				p[0], TitleKey(p[0]), p[1], TitleKey(p[1]))
		}
	}
}

func TestVariantOf(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"Evans", 1},
		{"Evans [2]", 2},
		{"Evans [2] ", 2},
		{"[2] Evans", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := VariantOf(tt.title); got != tt.want {
			t.Errorf("VariantOf(%q) = %d, want %d", tt.title, got, tt.want)
		}
	}
}
