package uxsettings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadInput reads an Input document from path. The format follows the file
// extension: .json, .yaml or .yml.
func LoadInput(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("uxsettings: read %s: %w", path, err)
	}

	in, err := DecodeInput(path, data)
	if err != nil {
		return Input{}, fmt.Errorf("uxsettings: decode %s: %w", path, err)
	}
	return in, nil
}

// DecodeInput decodes data using the format implied by the extension of path.
func DecodeInput(path string, data []byte) (Input, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeInputJSON(data)
	case ".yaml", ".yml":
		return decodeInputYAML(data)
	default:
		return Input{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func decodeInputJSON(data []byte) (Input, error) {
	var in Input
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		return Input{}, err
	}
	return in, nil
}

func decodeInputYAML(data []byte) (Input, error) {
	var in Input
	if len(bytes.TrimSpace(data)) == 0 {
		return in, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return Input{}, nil
		}
		return Input{}, fmt.Errorf("yaml parse error: %w", err)
	}
	return in, nil
}
