package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// MaskValue replaces every value the handler considers secret.
const MaskValue = "***REDACTED***"

// credentialKeys are attribute keys whose values are always masked,
// compared case-insensitively.
var credentialKeys = map[string]bool{
	// HTTP headers
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,

	// MediaWiki login and edit parameters
	"lgname":       true,
	"lgpassword":   true,
	"lgtoken":      true,
	"logintoken":   true,
	"csrftoken":    true,
	"botpassword":  true,
	"bot_password": true,
	"oauth_token":  true,
	"oauth_secret": true,

	// Generic
	"apikey":     true,
	"api_key":    true,
	"api-key":    true,
	"session":    true,
	"sessionid":  true,
	"session_id": true,
}

// credentialKeywords mask a key when they appear anywhere in it. A bare
// "key" is left out because it matches far too much ("extension_key").
var credentialKeywords = []string{
	"password", "passwd", "secret", "token", "credential", "private",
}

// secretValuePatterns match values that are secret whatever their key.
var secretValuePatterns = []*regexp.Regexp{
	// JWT
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	// Authorization header values
	regexp.MustCompile(`(?i)^bearer\s+.+`),
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),
	// MediaWiki csrf/login tokens: hex digest followed by "+\"
	regexp.MustCompile(`^[0-9a-f]{32,}\+\\$`),
	// PEM private keys
	regexp.MustCompile(`(?i)-----BEGIN.*(PRIVATE|SECRET).*KEY-----`),
}

// embeddedURL finds URLs inside free text such as error messages.
var embeddedURL = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s"'<>]+`)

// SecureHandler is an slog.Handler that masks credentials before records
// reach the wrapped handler.
//
// Attributes named like credentials are replaced by MaskValue. String and
// error values keep their text, but any URL in them loses its password and
// sensitive query values (see RedactURL). The message is treated the same
// way, since fetch errors often end up there.
type SecureHandler struct {
	next slog.Handler
}

// NewSecureHandler wraps handler. A nil handler means
// slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{next: handler}
}

// Enabled delegates to the wrapped handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle masks the record and passes it on.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, redactText(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

// WithAttrs masks attrs once, when they are attached.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = sanitizeAttr(a)
	}
	return &SecureHandler{next: h.next.WithAttrs(masked)}
}

// WithGroup delegates to the wrapped handler.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{next: h.next.WithGroup(name)}
}

// sanitizeAttr masks one attribute, descending into groups.
func sanitizeAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]slog.Attr, len(group))
		for i, ga := range group {
			masked[i] = sanitizeAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	}

	if isCredentialKey(a.Key) {
		return slog.String(a.Key, MaskValue)
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, sanitizeString(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok && err != nil {
			return slog.String(a.Key, redactText(err.Error()))
		}
	}
	return a
}

// isCredentialKey reports whether an attribute key names a credential.
func isCredentialKey(key string) bool {
	key = strings.ToLower(key)
	if credentialKeys[key] {
		return true
	}
	for _, kw := range credentialKeywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// isSecretValue reports whether a value looks like a secret on its own.
func isSecretValue(value string) bool {
	for _, p := range secretValuePatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

func sanitizeString(s string) string {
	if isSecretValue(s) {
		return MaskValue
	}
	return redactText(s)
}

// redactText applies RedactURL to every URL found in s.
func redactText(s string) string {
	if !strings.Contains(s, "://") {
		return s
	}
	return embeddedURL.ReplaceAllStringFunc(s, func(u string) string {
		redacted, _ := RedactURL(u)
		return redacted
	})
}

// NewSecureLogger returns a text logger on w that masks credentials.
// verbose selects Debug level; otherwise only warnings and errors are
// written.
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewSecureJSONLogger is NewSecureLogger with JSON output, for log
// collection from "versioncompare serve".
func NewSecureJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewSecureHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
