package modelio

// Provenance is the metadata sub-object embedded in every JSON artifact
// (§6). Fields that only apply to a pruned/hashed variant or to the
// parser use pointers so they are omitted from JSON when not set —
// compact output for the variant that doesn't carry them.
type Provenance struct {
	ScriptVersion string  `json:"scriptVersion"`
	GitHash       string  `json:"gitHash"`
	CorpusVersion string  `json:"corpusVersion"`
	TrainingDate  string  `json:"trainingDate"`
	License       string  `json:"license"`
	Seed          int64   `json:"seed"`
	Iterations    int     `json:"iterations"`
	DevAccuracy   float64 `json:"devAccuracy"`

	PruneThreshold       *float64 `json:"pruneThreshold,omitempty"`
	PostPruneDevAccuracy *float64 `json:"postPruneDevAccuracy,omitempty"`

	UAS                       *float64 `json:"uas,omitempty"`
	LAS                       *float64 `json:"las,omitempty"`
	DevUAS                    *float64 `json:"devUAS,omitempty"`
	DevLAS                    *float64 `json:"devLAS,omitempty"`
	NonProjectiveSentenceRate *float64 `json:"nonProjectiveSentenceRate,omitempty"`
	NonProjectiveArcRate      *float64 `json:"nonProjectiveArcRate,omitempty"`
	PostHashUAS               *float64 `json:"postHashUAS,omitempty"`
	PostHashLAS               *float64 `json:"postHashLAS,omitempty"`
}

// Ptr is a small helper for populating the optional Provenance fields
// from a local float64 value.
func Ptr(v float64) *float64 { return &v }
