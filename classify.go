package postlens

import (
	"net/url"
	"strings"
)

// Platform hostname markers. Matching is substring-based on the hostname
// rather than exact domain equality; the leniency is a deliberate policy.
const (
	markerXiaohongshu = "xiaohongshu"
	markerWeixin      = "weixin.qq.com"
)

// Classify validates a URL string and identifies which platform it belongs
// to. It returns EINVALID for strings that do not parse as absolute URLs and
// for hostnames that match neither platform marker. Classify performs no I/O.
func Classify(raw string) (Platform, error) {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return "", Errorf(EINVALID, "Invalid URL format")
	}

	host := u.Hostname()
	switch {
	case strings.Contains(host, markerXiaohongshu):
		return PlatformXiaohongshu, nil
	case strings.Contains(host, markerWeixin):
		return PlatformWeixin, nil
	}

	return "", Errorf(EINVALID, "Only Xiaohongshu and WeChat article links are supported")
}
