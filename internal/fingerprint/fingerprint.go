// Package fingerprint derives a stable device identity from request metadata.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net"
	"net/http"
	"strings"

	md "github.com/JMURv/attendance-guard/internal/models"
	ua "github.com/mileusna/useragent"
)

var ErrInvalidFingerprint = errors.New("invalid device metadata")

const (
	PlatformWindows = "Windows"
	PlatformMacOS   = "macOS"
	PlatformLinux   = "Linux"
	PlatformAndroid = "Android"
	PlatformIOS     = "iOS"

	BrowserChrome  = "Chrome"
	BrowserFirefox = "Firefox"
	BrowserSafari  = "Safari"
	BrowserEdge    = "Edge"
)

type Metadata struct {
	UserAgent      string
	AcceptLanguage string
	AcceptEncoding string
	IP             string
}

func FromRequest(r *http.Request) Metadata {
	return Metadata{
		UserAgent:      r.UserAgent(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		AcceptEncoding: r.Header.Get("Accept-Encoding"),
		IP:             remoteIP(r.RemoteAddr),
	}
}

func remoteIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return strings.TrimSpace(addr)
	}
	return host
}

// Generate never fails: anything it cannot recognise becomes Unknown.
func Generate(meta Metadata) md.Fingerprint {
	platform := detectPlatform(meta.UserAgent)
	browser := detectBrowser(meta.UserAgent)

	return md.Fingerprint{
		DeviceUUID:     hash(platform, browser, meta.IP, meta.AcceptLanguage),
		DeviceType:     detectDeviceType(meta.UserAgent),
		Platform:       platform,
		Browser:        browser,
		BrowserVersion: browserVersion(meta.UserAgent, browser),
		Raw: md.RawFingerprint{
			UserAgent:      meta.UserAgent,
			IP:             meta.IP,
			AcceptLanguage: meta.AcceptLanguage,
			AcceptEncoding: meta.AcceptEncoding,
		},
	}
}

func Validate(fp *md.Fingerprint) error {
	if fp == nil || fp.DeviceUUID == "" {
		return ErrInvalidFingerprint
	}

	if strings.TrimSpace(fp.Raw.UserAgent) == "" && strings.TrimSpace(fp.Raw.IP) == "" {
		return ErrInvalidFingerprint
	}
	return nil
}

// DeviceName is the human readable label stored with a device record.
func DeviceName(fp *md.Fingerprint) string {
	return fp.Browser + " on " + fp.Platform
}

// hash covers only fields that stay the same for one device on one network,
// so the full user agent and timestamps never change the result.
func hash(platform, browser, ip, lang string) string {
	sum := md5.Sum(
		[]byte(
			strings.Join(
				[]string{
					"platform=" + platform,
					"browser=" + browser,
					"ip=" + ip,
					"lang=" + lang,
				}, "|",
			),
		),
	)
	return hex.EncodeToString(sum[:])
}

func detectDeviceType(userAgent string) string {
	s := strings.ToLower(userAgent)
	switch {
	case containsAny(s, "mobile", "android", "iphone"):
		return md.DeviceMobile
	case containsAny(s, "tablet", "ipad"):
		return md.DeviceTablet
	default:
		return md.DeviceDesktop
	}
}

func detectPlatform(userAgent string) string {
	s := strings.ToLower(userAgent)
	switch {
	case strings.Contains(s, "windows"):
		return PlatformWindows
	case strings.Contains(s, "android"):
		return PlatformAndroid
	case containsAny(s, "iphone", "ipad", "ipod", "ios"):
		return PlatformIOS
	case containsAny(s, "macintosh", "mac os"):
		return PlatformMacOS
	case strings.Contains(s, "linux"):
		return PlatformLinux
	default:
		return md.Unknown
	}
}

func detectBrowser(userAgent string) string {
	s := strings.ToLower(userAgent)
	switch {
	case containsAny(s, "edg/", "edge/", "edga/", "edgios/"):
		return BrowserEdge
	case containsAny(s, "chrome/", "crios/"):
		return BrowserChrome
	case containsAny(s, "firefox/", "fxios/"):
		return BrowserFirefox
	case strings.Contains(s, "safari/"):
		return BrowserSafari
	default:
		return md.Unknown
	}
}

func browserVersion(userAgent, browser string) string {
	if browser == md.Unknown {
		return ""
	}

	parsed := ua.Parse(userAgent)
	major, _, _ := strings.Cut(parsed.Version, ".")
	return major
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
