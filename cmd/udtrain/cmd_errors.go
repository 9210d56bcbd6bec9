package main

// errExit is returned by a command's RunE when it has already printed its
// own diagnostic to stderr (missing data, failed acceptance threshold,
// postprocess without a prior model): cobra must still exit non-zero, but
// must not print the error a second time.
type errExit struct{}

func (errExit) Error() string { return "" }
