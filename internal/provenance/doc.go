// Package provenance captures the training-run metadata embedded in every
// model artifact (script version, git hash, corpus version, seed,
// iterations, dev accuracy) plus a run id that is carried on Run and is
// not written to any artifact or log line.
package provenance
