package cmake

import (
	"strings"

	"github.com/jucetools/jucer2cmake/internal/jucer"
)

// Escape prefixes every occurrence of a character from chars with a backslash,
// scanning left to right so inserted backslashes are never reprocessed.
func Escape(chars, value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if strings.IndexByte(chars, value[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(value[i])
	}
	return b.String()
}

// Setting renders `TAG "value"` when the property exists and is non-empty,
// and the commented-out placeholder `# TAG` otherwise. Absence and emptiness
// are never errors.
func Setting(n *jucer.Node, tag, key string) string {
	if n.HasProperty(key) {
		if v := n.GetString(key, ""); v != "" {
			return tag + ` "` + Escape(`"`, v) + `"`
		}
	}
	return "# " + tag
}

// OnOffSetting renders `TAG ON` or `TAG OFF` for a 0/1 property, and the
// placeholder when the property is absent.
func OnOffSetting(n *jucer.Node, tag, key string) string {
	if !n.HasProperty(key) {
		return "# " + tag
	}
	if n.GetInt(key, 0) != 0 {
		return tag + " ON"
	}
	return tag + " OFF"
}
