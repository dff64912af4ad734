package logging

import (
	"log/slog"
	"net/textproto"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase header names that carry credentials or
// session state.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"x-api-key",
	"cookie",
	"set-cookie",
	"x-csrf-token",
}

// sensitiveFields are attribute keys redacted in addition to the headers.
var sensitiveFields = []string{"password", "secret", "token", "api_key"}

// sensitivePrefixes catch key variants such as secret_key or api_key_v2.
var sensitivePrefixes = []string{"secret_", "api_key"}

// sensitiveValues catch credentials that slipped into free-form values.
var sensitiveValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs. Ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// IsSensitiveHeader reports whether a header's value must be withheld from
// logs. The match ignores case.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// newRedactAttr builds the masq ReplaceAttr hook. Header names are
// registered in both lowercase and canonical form since masq matches keys
// exactly.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, h := range sensitiveHeaders {
		opts = append(opts,
			masq.WithFieldName(h),
			masq.WithFieldName(textproto.CanonicalMIMEHeaderKey(h)),
		)
	}
	for _, f := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	for _, p := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
