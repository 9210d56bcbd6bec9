package postag

import "errors"

// ErrEmptyTrainingSet is returned by Train when given no sentences to
// learn from; there is no tag set to classify over.
var ErrEmptyTrainingSet = errors.New("postag: empty training set")
