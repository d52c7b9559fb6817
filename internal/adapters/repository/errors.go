package repository

import "errors"

// ErrWriteStore wraps failures persisting the history or stats file;
// read failures never surface as errors, they degrade to empty data.
var ErrWriteStore = errors.New("store write failed")
