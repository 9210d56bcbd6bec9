package conllu

import "errors"

// ErrFileNotFound is returned when the requested treebank file is missing.
var ErrFileNotFound = errors.New("conllu: file not found")
