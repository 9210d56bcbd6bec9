// Package postag trains an averaged-perceptron part-of-speech tagger
// (§4.6): teacher-forced training over gold tag history, predicted-tag
// history plus a tag-dictionary shortcut for evaluation, and post-average
// pruning by absolute weight.
package postag
