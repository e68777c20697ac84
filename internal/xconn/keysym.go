// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

package xconn

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/mjkillough/lanta/internal/keys"
)

// KeysymFromName resolves an X11 keysym name ("a", "Return", "F1", ...) to
// its numeric value, for translating a configuration file's key-binding
// strings into the combos the driver grabs.
func KeysymFromName(name string) (uint32, error) {
	sym := keybind.StrToKeysym(name)
	if sym == 0 {
		return 0, fmt.Errorf("xconn: unknown keysym %q", name)
	}
	return uint32(sym), nil
}

var modifierNames = map[string]keys.ModMask{
	"shift":   keys.Shift,
	"lock":    keys.Lock,
	"control": keys.Control,
	"ctrl":    keys.Control,
	"mod1":    keys.Mod1,
	"alt":     keys.Mod1,
	"mod2":    keys.Mod2,
	"mod3":    keys.Mod3,
	"mod4":    keys.Mod4,
	"super":   keys.Mod4,
	"mod5":    keys.Mod5,
}

// ModMaskFromNames ORs together the modifier names in names (case
// insensitive), e.g. []string{"mod4", "shift"}.
func ModMaskFromNames(names []string) (keys.ModMask, error) {
	var mask keys.ModMask
	for _, n := range names {
		m, ok := modifierNames[strings.ToLower(n)]
		if !ok {
			return 0, fmt.Errorf("xconn: unknown modifier %q", n)
		}
		mask |= m
	}
	return mask, nil
}
