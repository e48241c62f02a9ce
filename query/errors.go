package query

// CheckClient returns ErrNilClient if c is nil, else nil, so a caller
// can fail fast with a sentinel error instead of a nil-pointer panic.
// engine.Build does its own nil check and does not call it.
func CheckClient(c Client) error {
	if c == nil {
		return ErrNilClient
	}

	return nil
}
