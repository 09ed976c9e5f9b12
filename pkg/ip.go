package pkg

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

var (
	localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)
)

// IPIsLocal reports whether the address belongs to a dev machine or the docker bridge.
func IPIsLocal(ipAddr string) bool {
	host := hostOnly(ipAddr)
	if host == "127.0.0.1" || host == "::1" {
		return true
	}
	return localDockerIpRegex.MatchString(host)
}

// ClientIP returns the caller address, preferring proxy headers over the socket address.
// Local addresses collapse to "localhost"; unparsable ones to "unknown".
func ClientIP(r *http.Request) string {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// first hop is the original client
		ipAddr, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		ipAddr = strings.TrimSpace(ipAddr)
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if IPIsLocal(ipAddr) {
		return "localhost"
	}

	host := hostOnly(ipAddr)
	if net.ParseIP(host) == nil {
		return "unknown"
	}
	return host
}

func hostOnly(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
