package identity

// Authorize evaluates a resolved identity against a required role set. It is
// a pure function: no I/O, no logging.
//
// Allow iff the identity is authenticated and the required set is empty or
// intersects the identity's roles. Absent or anonymous identities get
// ErrUnauthenticated; authenticated identities missing every required role
// get ErrPermissionDenied.
func Authorize(user *RequestUser, required ...string) error {
	if !user.Authenticated() {
		return ErrUnauthenticated
	}

	if len(required) == 0 {
		return nil
	}

	for _, role := range required {
		if user.HasRole(role) {
			return nil
		}
	}

	return ErrPermissionDenied
}
