package itemsource

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Smart punctuation in item labels would defeat the exact-match lookup the
// assigner relies on, so normalize it before anything else sees the items.
var charReplacementMap = map[string]string{
	"‘": "'", "’": "'", "“": "\"", "”": "\"",
	"–": "-", "—": "--", "…": "...", " ": " ",
}

func cleanContent(data []byte, src string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		log.Warnf("%s contains invalid UTF-8, replacing invalid chars", src)
		data = bytes.ToValidUTF8(data, []byte(string(utf8.RuneError)))
	}

	str := string(data)
	for bad, good := range charReplacementMap {
		str = strings.ReplaceAll(str, bad, good)
	}

	if !utf8.ValidString(str) {
		return "", fmt.Errorf("invalid UTF-8 after replacements: %s", src)
	}
	return str, nil
}
