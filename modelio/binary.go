package modelio

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"io"
	"sort"
)

const (
	magic          = "TT01"
	versionMajor   = 1
	versionMinor   = 1
	endianFlag     = 0x00
	modelTypeParser = 0x02
	headerLen      = 64
)

// BinaryModel is the sparse binary parser artifact (§6): a metadata JSON
// blob, an ordered feature index, and per-feature sparse weight rows
// keyed by transition name (resolved to transition_index against
// Transitions at write time).
type BinaryModel struct {
	Metadata    json.RawMessage
	Transitions []string
	Features    []string
	Weights     map[string]map[string]float64 // feature -> transition name -> weight
}

// WriteBinary encodes m as the v1.1 sparse binary format and writes it to
// w: a 64-byte little-endian header followed by the payload the header's
// checksum covers.
func WriteBinary(w io.Writer, m BinaryModel) error {
	transitionIndex := make(map[string]uint16, len(m.Transitions))
	for i, t := range m.Transitions {
		transitionIndex[t] = uint16(i)
	}

	var featureIndex bytes.Buffer
	for _, f := range m.Features {
		featureIndex.WriteString(f)
		featureIndex.WriteByte(0)
	}

	var weightBody bytes.Buffer
	var totalNonzero uint32
	for _, f := range m.Features {
		row := m.Weights[f]
		type entry struct {
			idx uint16
			w   float32
		}
		entries := make([]entry, 0, len(row))
		for transitionName, w := range row {
			idx, ok := transitionIndex[transitionName]
			if !ok {
				continue
			}
			entries = append(entries, entry{idx: idx, w: float32(w)})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })

		if err := binary.Write(&weightBody, binary.LittleEndian, uint16(len(entries))); err != nil {
			return err
		}
		for _, e := range entries {
			if err := binary.Write(&weightBody, binary.LittleEndian, e.idx); err != nil {
				return err
			}
			if err := binary.Write(&weightBody, binary.LittleEndian, e.w); err != nil {
				return err
			}
		}
		totalNonzero += uint32(len(entries))
	}

	var payload bytes.Buffer
	payload.Write(m.Metadata)
	payload.Write(featureIndex.Bytes())
	payload.Write(weightBody.Bytes())
	checksum := sha256.Sum256(payload.Bytes())

	header := make([]byte, headerLen)
	copy(header[0:4], magic)
	header[4] = versionMajor
	header[5] = versionMinor
	header[6] = endianFlag
	header[7] = modelTypeParser
	binary.LittleEndian.PutUint32(header[8:12], uint32(len(m.Features)))
	binary.LittleEndian.PutUint32(header[12:16], uint32(len(m.Transitions)))
	binary.LittleEndian.PutUint32(header[16:20], totalNonzero)
	binary.LittleEndian.PutUint32(header[20:24], uint32(len(m.Metadata)))
	binary.LittleEndian.PutUint32(header[24:28], uint32(featureIndex.Len()))
	binary.LittleEndian.PutUint32(header[28:32], uint32(weightBody.Len()))
	copy(header[32:64], checksum[:])

	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return err
	}
	return nil
}

type binaryMetadata struct {
	Transitions []string `json:"transitions"`
}

// ReadBinary decodes a v1.1 sparse binary parser model from r, verifying
// the header's SHA-256 against the recomputed payload digest (§7: a
// mismatch is a fatal read-side error).
func ReadBinary(r io.Reader) (*BinaryModel, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if string(header[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if header[4] != versionMajor || header[5] != versionMinor {
		return nil, ErrUnsupportedVersion
	}

	metadataLen := binary.LittleEndian.Uint32(header[20:24])
	featureIndexLen := binary.LittleEndian.Uint32(header[24:28])
	weightDataLen := binary.LittleEndian.Uint32(header[28:32])
	wantChecksum := header[32:64]

	payload := make([]byte, int(metadataLen)+int(featureIndexLen)+int(weightDataLen))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	gotChecksum := sha256.Sum256(payload)
	if !bytes.Equal(gotChecksum[:], wantChecksum) {
		return nil, ErrChecksumMismatch
	}

	metadata := payload[:metadataLen]
	featureIndexBytes := payload[metadataLen : metadataLen+featureIndexLen]
	weightBody := payload[metadataLen+featureIndexLen:]

	var meta binaryMetadata
	if err := json.Unmarshal(metadata, &meta); err != nil {
		return nil, err
	}

	features := splitFeatureIndex(featureIndexBytes)

	weights := make(map[string]map[string]float64, len(features))
	reader := bytes.NewReader(weightBody)
	for _, f := range features {
		var count uint16
		if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		row := make(map[string]float64, count)
		for i := uint16(0); i < count; i++ {
			var idx uint16
			var w float32
			if err := binary.Read(reader, binary.LittleEndian, &idx); err != nil {
				return nil, err
			}
			if err := binary.Read(reader, binary.LittleEndian, &w); err != nil {
				return nil, err
			}
			if int(idx) < len(meta.Transitions) {
				row[meta.Transitions[idx]] = float64(w)
			}
		}
		weights[f] = row
	}

	return &BinaryModel{
		Metadata:    metadata,
		Transitions: meta.Transitions,
		Features:    features,
		Weights:     weights,
	}, nil
}

func splitFeatureIndex(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	parts := bytes.Split(b, []byte{0})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			continue // trailing null (or any empty segment) yields no token
		}
		out = append(out, string(p))
	}
	return out
}
