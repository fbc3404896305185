package export

import "testing"

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Iridium Bar (Rare!)", "Iridium_Bar_Rare"},
		{"Prismatic Shard", "Prismatic_Shard"},
		{"Galaxy Sword", "Galaxy_Sword"},
		{"  padded  ", "padded"},
		{"__already__underscored__", "already_underscored"},
		{"100% Chance", "100_Chance"},
		{"Café au Lait", "Caf_au_Lait"},
		{"plain", "plain"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := SanitizeKey(tt.in); got != tt.want {
			t.Fatalf("SanitizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
