// Package translate renders user-facing message text in the locale of the
// running process.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	loaded  sync.Once
)

// detect picks the printer language from the process locale, falling back
// to en-US when none can be found.
func detect() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("esil: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the detected locale with the given BCP 47 tags.
func SetLanguage(tags ...string) {
	loaded.Do(detect)

	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	loaded.Do(detect)

	return printer.Sprintf(key, args...)
}
