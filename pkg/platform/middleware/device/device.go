// Package device classifies callers by their User-Agent for access logs.
package device

import (
	"github.com/mssola/useragent"
)

// Kind is a coarse caller class.
type Kind string

const (
	KindUnknown Kind = "unknown"
	KindBot     Kind = "bot"
	KindMobile  Kind = "mobile"
	KindDesktop Kind = "desktop"
)

// Info describes the software behind a request.
type Info struct {
	Kind    Kind
	Browser string
	OS      string
}

// Describe parses a User-Agent header. Scripts and the CLI usually send
// no browser token and end up as desktop with an empty browser.
func Describe(userAgent string) Info {
	if userAgent == "" {
		return Info{Kind: KindUnknown}
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	info := Info{Browser: browser, OS: ua.OS()}
	switch {
	case ua.Bot():
		info.Kind = KindBot
	case ua.Mobile():
		info.Kind = KindMobile
	default:
		info.Kind = KindDesktop
	}
	return info
}
