package depparse

import "errors"

// ErrEmptyTrainingSet is returned by Train when given no sentences to
// learn from; there is no label set to build the transition inventory from.
var ErrEmptyTrainingSet = errors.New("depparse: empty training set")
