package casc

import (
	"fmt"
	"strings"
)

// Locale bitmask flags, matching the values the game client and CascLib use.
const (
	LocaleEnUS uint32 = 0x00000002
	LocaleKoKR uint32 = 0x00000004
	LocaleFrFR uint32 = 0x00000010
	LocaleDeDE uint32 = 0x00000020
	LocaleZhCN uint32 = 0x00000040
	LocaleEsES uint32 = 0x00000080
	LocaleZhTW uint32 = 0x00000100
	LocaleEnGB uint32 = 0x00000200
	LocaleEnCN uint32 = 0x00000400
	LocaleEnTW uint32 = 0x00000800
	LocaleEsMX uint32 = 0x00001000
	LocaleRuRU uint32 = 0x00002000
	LocalePtBR uint32 = 0x00004000
	LocaleItIT uint32 = 0x00008000
	LocalePtPT uint32 = 0x00010000

	LocaleAll uint32 = 0xFFFFFFFF
)

var localeNames = map[string]uint32{
	"enUS": LocaleEnUS,
	"koKR": LocaleKoKR,
	"frFR": LocaleFrFR,
	"deDE": LocaleDeDE,
	"zhCN": LocaleZhCN,
	"esES": LocaleEsES,
	"zhTW": LocaleZhTW,
	"enGB": LocaleEnGB,
	"enCN": LocaleEnCN,
	"enTW": LocaleEnTW,
	"esMX": LocaleEsMX,
	"ruRU": LocaleRuRU,
	"ptBR": LocalePtBR,
	"itIT": LocaleItIT,
	"ptPT": LocalePtPT,
	"all":  LocaleAll,
}

// ParseLocales turns a comma-separated list of locale names ("enUS,deDE")
// into a bitmask. Names are case-insensitive.
func ParseLocales(list string) (uint32, error) {
	var mask uint32
	for _, raw := range strings.Split(list, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		found := false
		for known, bit := range localeNames {
			if strings.EqualFold(known, name) {
				mask |= bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown locale %q", name)
		}
	}
	if mask == 0 {
		return 0, fmt.Errorf("empty locale list %q", list)
	}
	return mask, nil
}

// LocaleNames renders the locale bits set in mask as a comma-separated list.
// Unknown bits are ignored; LocaleAll renders as "all".
func LocaleNames(mask uint32) string {
	if mask == LocaleAll {
		return "all"
	}
	ordered := []struct {
		name string
		bit  uint32
	}{
		{"enUS", LocaleEnUS}, {"koKR", LocaleKoKR}, {"frFR", LocaleFrFR},
		{"deDE", LocaleDeDE}, {"zhCN", LocaleZhCN}, {"esES", LocaleEsES},
		{"zhTW", LocaleZhTW}, {"enGB", LocaleEnGB}, {"enCN", LocaleEnCN},
		{"enTW", LocaleEnTW}, {"esMX", LocaleEsMX}, {"ruRU", LocaleRuRU},
		{"ptBR", LocalePtBR}, {"itIT", LocaleItIT}, {"ptPT", LocalePtPT},
	}
	var names []string
	for _, l := range ordered {
		if mask&l.bit != 0 {
			names = append(names, l.name)
		}
	}
	return strings.Join(names, ",")
}
