package perceptron

import "errors"

// ErrEmptyValidSet is returned by Predict when the candidate class set is empty.
var ErrEmptyValidSet = errors.New("perceptron: empty valid class set")
