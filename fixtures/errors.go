package fixtures

import "errors"

// ErrDirectoryNotFound is returned by Verify when the treebank directory
// itself is absent; individual missing files are reported in Report
// instead of failing the call.
var ErrDirectoryNotFound = errors.New("fixtures: treebank directory not found")
