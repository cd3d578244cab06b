package interfaces

import "errors"

// ErrNotFound is returned by all repositories when a document does not
// exist. Handlers map it to a 404 at the boundary.
var ErrNotFound = errors.New("document not found")
