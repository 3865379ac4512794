package casc

import "testing"

func TestParseLocales(t *testing.T) {
	tests := []struct {
		name    string
		list    string
		want    uint32
		wantErr bool
	}{
		{"single", "enUS", LocaleEnUS, false},
		{"case insensitive", "ENUS", LocaleEnUS, false},
		{"multiple", "enUS,deDE", LocaleEnUS | LocaleDeDE, false},
		{"spaces", " enUS , ruRU ", LocaleEnUS | LocaleRuRU, false},
		{"all", "all", LocaleAll, false},
		{"unknown", "klingon", 0, true},
		{"empty", "", 0, true},
		{"only commas", ",,", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocales(tt.list)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLocales(%q) error = %v, wantErr %v", tt.list, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLocales(%q) = 0x%X, want 0x%X", tt.list, got, tt.want)
			}
		})
	}
}

func TestLocaleNames(t *testing.T) {
	tests := []struct {
		name string
		mask uint32
		want string
	}{
		{"single", LocaleEnUS, "enUS"},
		{"pair in canonical order", LocaleDeDE | LocaleEnUS, "enUS,deDE"},
		{"all", LocaleAll, "all"},
		{"unknown bits ignored", 0x00000001, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocaleNames(tt.mask); got != tt.want {
				t.Errorf("LocaleNames(0x%X) = %q, want %q", tt.mask, got, tt.want)
			}
		})
	}
}
