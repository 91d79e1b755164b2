// Package i18n loads the embedded translation catalogues and looks up
// user-facing strings by key.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLocale is the language the game ships in
const DefaultLocale = "es"

//go:embed locales/*.po
var catalogs embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Po
	lang    string
)

// SetLocale switches the active catalogue. Unknown locales are an error and
// leave the current catalogue in place.
func SetLocale(locale string) error {
	data, err := catalogs.ReadFile("locales/" + locale + ".po")
	if err != nil {
		return fmt.Errorf("unknown locale %q: %w", locale, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	lang = locale
	mu.Unlock()
	return nil
}

// Locale returns the active locale
func Locale() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// Get translates key. Keys without a translation are returned as-is.
// Callers format translations carrying verbs with fmt.Sprintf.
func Get(key string) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	if po == nil {
		if err := SetLocale(DefaultLocale); err != nil {
			return key
		}
		mu.RLock()
		po = current
		mu.RUnlock()
	}
	return po.Get(key)
}
