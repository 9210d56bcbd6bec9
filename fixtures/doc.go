// Package fixtures provides treebank integrity verification and
// alignment-fixture extraction, reimplementing verify_ud_ewt.py and
// extract_alignment_fixtures.py: corpus presence/size/tag-coverage checks,
// and a category-targeted selection of representative sentences for
// tokenizer alignment testing.
package fixtures
