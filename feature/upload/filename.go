package upload

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var reUnsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// allowedExtensions are the image types the site renders.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// SecureFilename reduces name to a flat ASCII file name: accents are
// decomposed and dropped, path separators become spaces, runs of whitespace
// become underscores, anything outside [A-Za-z0-9_.-] is removed and leading
// or trailing dots and underscores are trimmed. The result may be empty.
func SecureFilename(name string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	s := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	s = strings.Join(strings.Fields(s), "_")
	s = reUnsafeFilename.ReplaceAllString(s, "")
	return strings.Trim(s, "._")
}

// allowedFile reports whether name carries an allowed image extension.
func allowedFile(name string) bool {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(name[i+1:])]
}
