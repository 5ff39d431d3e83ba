package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/mizukyf/minque/internal/parser"
)

// recordsField is the CUE field holding the record list.
const recordsField = "records"

// LoadError is a file that could not be read or decoded.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// LoadConfig reads lexer options from a YAML, JSON or CUE file.
// An empty YAML or JSON file yields the zero Config, which keeps every
// default.
func LoadConfig(path string) (parser.Config, error) {
	var cfg parser.Config
	if err := decodeFile(path, "", ErrCodeConfig, &cfg); err != nil {
		return parser.Config{}, err
	}
	return cfg, nil
}

// LoadRecords reads a list of records from a file.
//
// YAML and JSON files hold a top-level list of mappings. CUE files hold
// the list under a "records" field so the rest of the file can define
// schemas and defaults.
func LoadRecords(path string) ([]map[string]any, error) {
	var records []map[string]any
	if err := decodeFile(path, recordsField, ErrCodeRecords, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}

func decodeFile(path, cueField, code string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Code: code, Path: path, Message: err.Error()}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return &LoadError{Code: code, Path: path, Message: fmt.Sprintf("parsing: %v", err)}
		}
		return nil

	case ".cue":
		v := cuecontext.New().CompileBytes(data, cue.Filename(path))
		if err := v.Err(); err != nil {
			return &LoadError{Code: code, Path: path, Message: fmt.Sprintf("compiling CUE: %v", err)}
		}
		if cueField != "" {
			v = v.LookupPath(cue.ParsePath(cueField))
			if !v.Exists() {
				return &LoadError{Code: code, Path: path, Message: fmt.Sprintf("field %q not found", cueField)}
			}
		}
		if err := v.Decode(out); err != nil {
			return &LoadError{Code: code, Path: path, Message: fmt.Sprintf("decoding CUE: %v", err)}
		}
		return nil

	default:
		return &LoadError{Code: ErrCodeUnsupported, Path: path, Message: fmt.Sprintf("unsupported file type %q", ext)}
	}
}

// loadErrorCode returns the code carried by a LoadError, or fallback.
func loadErrorCode(err error, fallback string) string {
	var lerr *LoadError
	if errors.As(err, &lerr) {
		return lerr.Code
	}
	return fallback
}
