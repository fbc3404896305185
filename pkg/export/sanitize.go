package export

import "strings"

// SanitizeKey turns a display name into a dictionary-key-safe token:
// every non-alphanumeric rune becomes an underscore, runs of
// underscores collapse to one, and leading/trailing underscores are
// trimmed. "Iridium Bar (Rare!)" -> "Iridium_Bar_Rare".
func SanitizeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}
