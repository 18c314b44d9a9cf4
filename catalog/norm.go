// ABOUTME: Title normalization for cross-referencing against the version index
// ABOUTME: Folds width/case/punctuation variants so differing sources compare equal

package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Full-width punctuation folded to its half-width ASCII equivalent.
// Index files are often typed against Japanese sources that use the
// full-width forms; catalog exports use whichever the spreadsheet had.
var widthFolds = strings.NewReplacer(
	"！", "!",
	"？", "?",
	"（", "(",
	"）", ")",
	"［", "[",
	"］", "]",
	"｛", "{",
	"｝", "}",
	"：", ":",
	"；", ";",
	"，", ",",
	"．", ".",
	"／", "/",
	"＼", "\\",
	"～", "~",
	"〜", "~",
	"＆", "&",
	"＋", "+",
	"－", "-",
	"＝", "=",
	"＊", "*",
	"＃", "#",
	"＠", "@",
	"　", " ",
	// Typographic quotes to straight quotes
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
	"″", `"`,
	"′", "'",
)

// symbolFolds drops the decorative symbols titles sprinkle between
// syllables and artist names (hearts, stars, interpuncts) and spells
// out Roman numeral codepoints, which tagged sources write as plain
// letters.
var symbolFolds = strings.NewReplacer(
	"♡", "",
	"♥", "",
	"☆", "",
	"★", "",
	"・", "",
	"·", "",
	"Ⅰ", "i",
	"Ⅱ", "ii",
	"Ⅲ", "iii",
)

// stripMarks removes combining diacritical marks after NFD
// decomposition, giving accent-insensitive keys ("é" matches "e").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// TitleKey maps a raw catalog title to its canonical comparison key for
// index lookups. The literal title keeps its "[2]" marker for display;
// the key never carries one.
func TitleKey(title string) string {
	s := strings.TrimSpace(title)
	s = strings.TrimSuffix(s, variantMarker)
	s = widthFolds.Replace(s)
	s = symbolFolds.Replace(s)

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	s = collapseSpaces(s)
	s = strings.ToLower(s)

	return s
}

// collapseSpaces squeezes whitespace runs to single spaces, trims the
// edges, and drops spaces next to the bracket/tilde characters used in
// title conventions, plus normalizes spacing around hyphens.
func collapseSpaces(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	for _, pair := range [...][2]string{
		{"( ", "("},
		{" )", ")"},
		{"[ ", "["},
		{" ]", "]"},
		{"~ ", "~"},
		{" ~", "~"},
		{" - ", "-"},
		{"- ", "-"},
		{" -", "-"},
	} {
		s = strings.ReplaceAll(s, pair[0], pair[1])
	}

	return strings.TrimSpace(s)
}
