package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reScript = regexp.MustCompile(`(?i)<script[^>]*>[\s\S]*?</script>`)
	reStyle  = regexp.MustCompile(`(?i)<style[^>]*>[\s\S]*?</style>`)
)

// StripHTML returns the visible text content of a string that may contain
// markup. Tags and script/style bodies are removed and entities decoded;
// whitespace is left exactly as the text extraction produced it. Empty
// input yields an empty string.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}

	// Decode entities first (e.g. &lt; -> <) so tags are recognized
	s = html.UnescapeString(s)

	// Remove script and style blocks content
	s = reScript.ReplaceAllString(s, "")
	s = reStyle.ReplaceAllString(s, "")

	// Strip tags using bluemonday
	p := bluemonday.StripTagsPolicy()
	s = p.Sanitize(s)

	// Decode entities again; bluemonday escapes what it keeps
	return html.UnescapeString(s)
}

// FoldAccents removes diacritics so fuzzy name matching treats "José" and
// "Jose" the same.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeForSearch lowercases and strips accents for matching.
func NormalizeForSearch(s string) string {
	return strings.ToLower(FoldAccents(s))
}
