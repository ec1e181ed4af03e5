package wallery

import "fmt"

// DirAccessError reports a directory that could not be scanned. The
// gallery keeps its previous contents when a scan fails this way.
type DirAccessError struct {
	Dir string
	Err error
}

func (e *DirAccessError) Error() string {
	return fmt.Sprintf("access %s: %v", e.Dir, e.Err)
}

func (e *DirAccessError) Unwrap() error { return e.Err }

// DecodeError reports a single file that could not be decoded. It never
// aborts a batch; the loader substitutes a placeholder and moves on.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
