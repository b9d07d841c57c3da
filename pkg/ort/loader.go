package ort

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/depscope/depscope/pkg/errors"
)

// Load reads an analysis result document from path and deserializes it.
// Files ending in ".gz" are decompressed transparently. It fails with a
// parse error when the file is missing, unreadable, or not valid JSON; the
// underlying cause is preserved for diagnostics. Parsing is all-or-nothing
// for the top-level structure, but optional nested sections (advisor,
// scanner, scope dependencies) may be absent without failing the load.
func Load(path string) (*Result, error) {
	const op = "ort.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E(op, errors.KindParse, "cannot read result file", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.E(op, errors.KindParse, "cannot decompress result file", err)
		}
		defer gz.Close()
		r = gz
	}

	result, err := decode(r)
	if err != nil {
		return nil, errors.E(op, errors.KindParse, "invalid result document", err)
	}
	return result, nil
}

// Parse deserializes an analysis result document from raw bytes.
func Parse(data []byte) (*Result, error) {
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.E("ort.Parse", errors.KindParse, "invalid result document", err)
	}
	return &result, nil
}

func decode(r io.Reader) (*Result, error) {
	var result Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
