// Package modelio writes and reads the trained model artifacts: JSON
// exports for the POS tagger, the parser (full and pruned/hashed), and
// the calibration table, plus the sparse binary parser model (§6).
package modelio
