package i18n

import (
	"log"

	"github.com/cloudfoundry-attic/jibber_jabber"
)

// DetectSystemLocale returns the host's IETF locale (e.g. "de-DE"), or ""
// when the environment does not declare one.
func DetectSystemLocale() string {
	locale, err := jibber_jabber.DetectIETF()
	if err != nil {
		log.Printf("[WARN] detect system locale: %v", err)
		return ""
	}
	return locale
}
