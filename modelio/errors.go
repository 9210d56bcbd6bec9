package modelio

import "errors"

// ErrChecksumMismatch is returned by ReadBinary when the SHA-256 recorded
// in the header does not match the recomputed payload digest (§7: "binary
// checksum mismatch on re-read" is a fatal read-side error).
var ErrChecksumMismatch = errors.New("modelio: binary checksum mismatch")

// ErrBadMagic is returned by ReadBinary when the file does not start with
// the "TT01" magic.
var ErrBadMagic = errors.New("modelio: bad magic, not a TT01 model file")

// ErrUnsupportedVersion is returned by ReadBinary when the header's
// major/minor version is not one this reader understands.
var ErrUnsupportedVersion = errors.New("modelio: unsupported binary version")
