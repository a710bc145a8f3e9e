package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the targeted id
// has no matching row. Handlers map this to HTTP 404 with a message naming
// the resource kind.
var ErrNotFound = errors.New("not found")

// ErrRowCount is returned by service save paths when the repository reports
// an affected-row count other than one. It signals a store-level anomaly, not
// bad user input. Handlers map this to HTTP 500.
var ErrRowCount = errors.New("unexpected affected row count")
