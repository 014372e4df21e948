package fingerprint

import (
	"net/http/httptest"
	"testing"

	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	chromeWindows  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	chromeWindows2 = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.6167.85 Safari/537.36"
	firefoxLinux   = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	safariMac      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
	edgeWindows    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91"
	chromeAndroid  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.144 Mobile Safari/537.36"
	safariIPhone   = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"
	tabletUA       = "Mozilla/5.0 (Tablet; rv:68.0) Gecko/68.0 Firefox/68.0"
)

func TestGenerate_Classification(t *testing.T) {
	tests := []struct {
		name       string
		ua         string
		deviceType string
		platform   string
		browser    string
	}{
		{name: "ChromeWindows", ua: chromeWindows, deviceType: md.DeviceDesktop, platform: PlatformWindows, browser: BrowserChrome},
		{name: "FirefoxLinux", ua: firefoxLinux, deviceType: md.DeviceDesktop, platform: PlatformLinux, browser: BrowserFirefox},
		{name: "SafariMac", ua: safariMac, deviceType: md.DeviceDesktop, platform: PlatformMacOS, browser: BrowserSafari},
		{name: "EdgeWindows", ua: edgeWindows, deviceType: md.DeviceDesktop, platform: PlatformWindows, browser: BrowserEdge},
		{name: "ChromeAndroid", ua: chromeAndroid, deviceType: md.DeviceMobile, platform: PlatformAndroid, browser: BrowserChrome},
		{name: "SafariIPhone", ua: safariIPhone, deviceType: md.DeviceMobile, platform: PlatformIOS, browser: BrowserSafari},
		{name: "Tablet", ua: tabletUA, deviceType: md.DeviceTablet, platform: md.Unknown, browser: BrowserFirefox},
		{name: "Empty", ua: "", deviceType: md.DeviceDesktop, platform: md.Unknown, browser: md.Unknown},
		{name: "Garbage", ua: "curl/8.4.0", deviceType: md.DeviceDesktop, platform: md.Unknown, browser: md.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Generate(Metadata{UserAgent: tt.ua, IP: "10.0.0.1", AcceptLanguage: "en-US"})
			assert.Equal(t, tt.deviceType, fp.DeviceType)
			assert.Equal(t, tt.platform, fp.Platform)
			assert.Equal(t, tt.browser, fp.Browser)
			assert.Len(t, fp.DeviceUUID, 32)
		})
	}
}

func TestGenerate_BrowserVersion(t *testing.T) {
	assert.Equal(t, "120", Generate(Metadata{UserAgent: chromeWindows}).BrowserVersion)
	assert.Equal(t, "121", Generate(Metadata{UserAgent: firefoxLinux}).BrowserVersion)
	assert.Equal(t, "", Generate(Metadata{UserAgent: "curl/8.4.0"}).BrowserVersion)
}

func TestGenerate_StableUUID(t *testing.T) {
	a := Generate(
		Metadata{
			UserAgent:      chromeWindows,
			AcceptLanguage: "en-US",
			AcceptEncoding: "gzip",
			IP:             "192.168.1.10",
		},
	)
	b := Generate(
		Metadata{
			UserAgent:      chromeWindows2,
			AcceptLanguage: "en-US",
			AcceptEncoding: "br",
			IP:             "192.168.1.10",
		},
	)
	assert.Equal(t, a.DeviceUUID, b.DeviceUUID)

	otherIP := Generate(Metadata{UserAgent: chromeWindows, AcceptLanguage: "en-US", IP: "192.168.1.11"})
	assert.NotEqual(t, a.DeviceUUID, otherIP.DeviceUUID)

	otherLang := Generate(Metadata{UserAgent: chromeWindows, AcceptLanguage: "de-DE", IP: "192.168.1.10"})
	assert.NotEqual(t, a.DeviceUUID, otherLang.DeviceUUID)

	otherBrowser := Generate(Metadata{UserAgent: firefoxLinux, AcceptLanguage: "en-US", IP: "192.168.1.10"})
	assert.NotEqual(t, a.DeviceUUID, otherBrowser.DeviceUUID)
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("POST", "/devices/register", nil)
	req.RemoteAddr = "203.0.113.7:54321"
	req.Header.Set("User-Agent", chromeWindows)
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("Accept-Encoding", "gzip")

	meta := FromRequest(req)
	assert.Equal(t, "203.0.113.7", meta.IP)
	assert.Equal(t, chromeWindows, meta.UserAgent)
	assert.Equal(t, "en-US", meta.AcceptLanguage)
	assert.Equal(t, "gzip", meta.AcceptEncoding)

	req.RemoteAddr = "203.0.113.8"
	assert.Equal(t, "203.0.113.8", FromRequest(req).IP)
}

func TestValidate(t *testing.T) {
	fp := Generate(Metadata{UserAgent: chromeWindows, IP: "10.0.0.1"})
	require.NoError(t, Validate(&fp))

	assert.ErrorIs(t, Validate(nil), ErrInvalidFingerprint)
	assert.ErrorIs(t, Validate(&md.Fingerprint{}), ErrInvalidFingerprint)

	empty := Generate(Metadata{})
	assert.ErrorIs(t, Validate(&empty), ErrInvalidFingerprint)
}

func TestDeviceName(t *testing.T) {
	fp := Generate(Metadata{UserAgent: chromeWindows})
	assert.Equal(t, "Chrome on Windows", DeviceName(&fp))
}
