// Package conllu reads CoNLL-U treebank files into Sentence slices.
//
// It is a thin reader, not a validator: multi-word ranges ("29-30") and
// empty nodes ("8.1") are skipped per the Universal Dependencies format,
// comment lines and blank sentence separators are honored, and malformed
// lines (fewer than the required columns) are dropped rather than
// aborting the read.
package conllu
