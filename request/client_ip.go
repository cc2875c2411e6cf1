package request

import (
	"net"
	"strings"

	"github.com/wpmvc/helpers/sanitize"
)

// ClientIP resolves the caller's IP address from the environment.
// Three sources are consulted in fixed priority order: the Client-Ip
// header, the X-Forwarded-For header (whose comma-separated entries are
// trimmed and tried left to right), and finally the connection's remote
// address. A candidate is accepted only when it passes textual IP
// validation; both address families are accepted. The accepted value is
// sanitized before return, which leaves a valid address untouched.
// The boolean result reports whether any source yielded a valid address.
func ClientIP(env Environment) (string, bool) {
	serverVars := env.ServerVars()

	if candidate := serverVars[serverVarClientIP]; candidate != "" && isValidIP(candidate) {
		return sanitize.TextField(candidate), true
	}

	if forwarded := serverVars[serverVarForwardedFor]; forwarded != "" {
		for candidate := range strings.SplitSeq(forwarded, ",") {
			candidate = strings.TrimSpace(candidate)
			if isValidIP(candidate) {
				return sanitize.TextField(candidate), true
			}
		}
	}

	if candidate := serverVars[serverVarRemoteAddr]; candidate != "" && isValidIP(candidate) {
		return sanitize.TextField(candidate), true
	}

	return "", false
}

// isValidIP reports whether the value parses as a textual IPv4 or IPv6 address.
func isValidIP(value string) bool {
	return net.ParseIP(value) != nil
}
