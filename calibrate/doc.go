// Package calibrate turns committed-arc margins into a monotone
// margin -> probability-correct calibration table via equal-count binning
// followed by isotonic regression (pool-adjacent-violators), per the
// parser post-processing pipeline (spec §4.8).
package calibrate
