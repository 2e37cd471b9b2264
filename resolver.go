package identity

import "strings"

// Inbound credential header names, carried over from the upstream API
// contract so existing clients keep working.
const (
	HeaderToken     = "token"
	HeaderMockToken = "bktoken"
	HeaderRealIP    = "x-real-ip"
)

// MockCredentialPrefix marks an impersonation credential in the mock header.
const MockCredentialPrefix = "_mock"

const loopbackV6 = "::1"

// HeaderSource exposes the inbound request headers to the resolver.
type HeaderSource interface {
	Get(key string) string
}

// Resolver derives a RequestUser from inbound request credentials. It never
// returns an error: token failures degrade to the anonymous identity and a
// logged diagnostic, and the request proceeds unauthenticated.
type Resolver struct {
	tokens      TokenCodec
	mockEnabled bool
	loopbackIP  string
	logger      Logger
}

// NewResolver returns a resolver backed by the given token codec.
func NewResolver(tokens TokenCodec) *Resolver {
	return &Resolver{
		tokens: tokens,
		logger: defLogger{},
	}
}

func (r *Resolver) WithLogger(logger Logger) *Resolver {
	r.logger = logger
	return r
}

// WithMockCredentials toggles the impersonation header. Test and staging
// environments only; leave off in production.
func (r *Resolver) WithMockCredentials(enabled bool) *Resolver {
	r.mockEnabled = enabled
	return r
}

// WithLoopbackPlaceholder substitutes the given address for the IPv6 loopback
// literal during client IP resolution. Empty disables the substitution.
func (r *Resolver) WithLoopbackPlaceholder(ip string) *Resolver {
	r.loopbackIP = ip
	return r
}

// Resolve derives the caller identity from the inbound headers and remote
// address. It returns nil when no credential was presented at all, so callers
// can tell "no attempt" from "failed attempt".
func (r *Resolver) Resolve(headers HeaderSource, remoteAddr string) *RequestUser {
	ip := r.clientIP(headers, remoteAddr)

	if r.mockEnabled {
		if raw := headers.Get(HeaderMockToken); strings.HasPrefix(raw, MockCredentialPrefix) {
			return mockUser(raw, ip)
		}
	}

	raw := headers.Get(HeaderToken)
	if raw == "" {
		return nil
	}

	user := &RequestUser{
		Roles: []string{},
		IP:    ip,
		Token: raw,
	}

	claims, err := r.tokens.Validate(raw)
	if err != nil {
		r.logger.Error("token decode error: %v ip=%s", err, ip)
		return user
	}

	user.ID = claims.UserID()
	user.Username = claims.Username
	user.Email = claims.Email
	if claims.Roles != nil {
		user.Roles = claims.Roles
	}

	return user
}

func (r *Resolver) clientIP(headers HeaderSource, remoteAddr string) string {
	ip := headers.Get(HeaderRealIP)
	if ip == "" {
		ip = remoteAddr
	}
	if r.loopbackIP != "" && ip == loopbackV6 {
		ip = r.loopbackIP
	}
	return ip
}

// mockUser builds an identity from an impersonation credential of the form
// "_mock<name>,<id>". The first segment becomes the username and the text
// after the first comma becomes the user ID; roles stay empty.
func mockUser(raw, ip string) *RequestUser {
	user := &RequestUser{
		Roles: []string{},
		IP:    ip,
		Token: raw,
	}

	parts := strings.Split(raw, ",")
	user.Username = parts[0]
	if len(parts) > 1 {
		user.ID = parts[1]
	}

	return user
}
