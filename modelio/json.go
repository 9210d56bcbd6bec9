package modelio

import (
	"encoding/json"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/udtrain/perceptron"
)

// POSModel is the JSON shape written for both the full and pruned POS
// artifact (§6); the pruned variant differs only in Weights' contents and
// in which Provenance fields are populated.
type POSModel struct {
	Version    string             `json:"version"`
	Tagset     string             `json:"tagset"`
	TrainedOn  string             `json:"trainedOn"`
	Provenance Provenance         `json:"provenance"`
	Classes    []string           `json:"classes"`
	TagDict    map[string]string  `json:"tagdict"`
	Weights    map[string]map[string]float64 `json:"weights"`
}

// ParserModel is the JSON shape written for both the full parser artifact
// (Weights keyed by feature string) and the pruned/hashed variant
// (Weights keyed by decimal bucket id string, NumBuckets set).
type ParserModel struct {
	Version     string             `json:"version"`
	TrainedOn   string             `json:"trainedOn"`
	Provenance  Provenance         `json:"provenance"`
	Labels      []string           `json:"labels"`
	Transitions []string           `json:"transitions"`
	NumBuckets  uint32             `json:"numBuckets,omitempty"`
	Weights     map[string]map[string]float64 `json:"weights"`
}

// CalibrationModel is the JSON shape of the calibration table (§6).
type CalibrationModel struct {
	Bins []CalibrationBin `json:"bins"`
}

// CalibrationBin is one row of CalibrationModel.Bins.
type CalibrationBin struct {
	Margin      float64 `json:"margin"`
	Probability float64 `json:"probability"`
	Count       int     `json:"count"`
}

// WritePOSJSON writes m to w as compact JSON (no gratuitous whitespace).
func WritePOSJSON(w io.Writer, m POSModel) error {
	return writeCompact(w, m)
}

// WriteParserJSON writes m to w as compact JSON.
func WriteParserJSON(w io.Writer, m ParserModel) error {
	return writeCompact(w, m)
}

// WriteCalibrationJSON writes m to w as compact JSON.
func WriteCalibrationJSON(w io.Writer, m CalibrationModel) error {
	return writeCompact(w, m)
}

// ReadParserJSON reads back a full (unhashed) parser artifact, the shape
// --postprocess needs to re-hash a model without retraining.
func ReadParserJSON(r io.Reader) (ParserModel, error) {
	var m ParserModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return ParserModel{}, err
	}
	return m, nil
}

// Averaged converts the JSON weight table back into the nested
// feature->class->weight form perceptron/hashing operate on. Valid only
// for the full (unhashed) variant, where Weights is keyed by feature.
func (m ParserModel) Averaged() perceptron.Averaged {
	out := make(perceptron.Averaged, len(m.Weights))
	for feature, classes := range m.Weights {
		row := make(map[string]float64, len(classes))
		for class, w := range classes {
			row[class] = w
		}
		out[feature] = row
	}
	return out
}

func writeCompact(w io.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// RoundedWeights converts a feature/class (or bucket/class) weight table
// into a JSON-ready map with every value rounded to 2 decimal places,
// dropping cells that round to zero (§6: "2-3 decimal rounded, zero
// entries dropped").
func RoundedWeights(weights map[string]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(weights))
	for key, classes := range weights {
		row := make(map[string]float64, len(classes))
		for class, w := range classes {
			r := math.Round(w*100) / 100
			if r == 0 {
				continue
			}
			row[class] = r
		}
		if len(row) > 0 {
			out[key] = row
		}
	}
	return out
}

// BucketWeights converts a hashing.Model-shaped bucket table (uint32 keys)
// into the decimal-string-keyed form the pruned parser JSON uses.
func BucketWeights(buckets map[uint32]map[string]float64) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(buckets))
	for bucket, classes := range buckets {
		out[strconv.FormatUint(uint64(bucket), 10)] = classes
	}
	return out
}

// SortedKeys returns the keys of a string set in ascending order, used to
// build the "classes"/"labels"/"tagdict" sorted JSON fields.
func SortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
