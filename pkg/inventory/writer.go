package inventory

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tfinv/pkg/errors"
	"tfinv/pkg/logger"
)

// Output encodings accepted by Write.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Write serializes the tree and persists it, creating missing parent
// directories. For JSON output a .yml/.yaml suffix on path is rewritten
// to .json so the declared path and the encoding agree. Returns the
// path actually written. Failures are errors.KindWriteFailure.
func Write(inv *Inventory, path, format string) (string, error) {
	if format == FormatJSON {
		path = jsonPath(path)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.NewWriteFailure(path, err)
		}
	}

	data, err := encode(inv, format)
	if err != nil {
		return "", errors.NewWriteFailure(path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.NewWriteFailure(path, err)
	}

	logger.Infof("Inventory saved to %s", path)
	return path, nil
}

func encode(inv *Inventory, format string) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(inv, "", "  ")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(inv); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jsonPath swaps a trailing YAML suffix for .json. Other suffixes are
// left alone.
func jsonPath(path string) string {
	for _, suffix := range []string{".yml", ".yaml"} {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix) + ".json"
		}
	}
	return path
}
