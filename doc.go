// Package identity provides a minimal stateless bearer-token auth core:
// bcrypt credential hashing, HS256 JWT issuance and validation, per-request
// identity resolution, and role-based guards.
//
// Request flow:
//   - Resolver reads the inbound credential headers and derives a RequestUser,
//     degrading to an anonymous identity on any token failure. It never errors
//     across the request boundary; rejection is the guard's job.
//   - Authorize gates an operation by a required role set. An empty set means
//     "any authenticated identity".
//
// Account flow:
//   - Accounts composes the hasher, the token service, and a UserStore into
//     register, login, profile, and delete operations. Login failures are
//     indistinguishable between unknown email and bad password so callers
//     cannot enumerate accounts.
//
// Sessions are stateless: a token is valid iff its signature checks out and it
// has not expired. There is no server-side revocation list, so rotating the
// signing secret invalidates every outstanding token.
package identity
