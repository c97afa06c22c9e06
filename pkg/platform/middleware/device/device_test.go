package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Run("empty header", func(t *testing.T) {
		assert.Equal(t, Info{Kind: KindUnknown}, Describe(""))
	})

	t.Run("desktop browser", func(t *testing.T) {
		info := Describe("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		assert.Equal(t, KindDesktop, info.Kind)
		assert.Equal(t, "Chrome", info.Browser)
	})

	t.Run("mobile browser", func(t *testing.T) {
		info := Describe("Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1")
		assert.Equal(t, KindMobile, info.Kind)
	})

	t.Run("crawler", func(t *testing.T) {
		info := Describe("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		assert.Equal(t, KindBot, info.Kind)
	})
}
