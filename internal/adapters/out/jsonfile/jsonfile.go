// Package jsonfile reads the JSON inputs and writes the JSON artifacts of a
// pipeline run. Field names on the wire are part of the tool's contract:
// clean orders keep the lower-cased internal field names, while plan
// assignments use the camelCase orderId/courierId convention.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"dispatch/internal/pkg/errs"
)

// readJSON loads and decodes a whole JSON file into out.
func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errs.NewObjectNotFoundErrorWithCause("path", path, err)
		}
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(path, err)
	}
	return nil
}

// writeJSON writes v as 2-space-indented JSON, matching the artifact format
// consumers already parse.
func writeJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
