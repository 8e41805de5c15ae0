// Package apicheck verifies that an api file is a valid OpenAPI 3 document
// before it is handed to the code generator.
package apicheck

import (
	"context"
	"errors"

	"github.com/alexandremahdhaoui/fabrikt-forge/pkg/flaterrors"
	"github.com/getkin/kin-openapi/openapi3"
)

var (
	errLoadingAPIFile    = errors.New("loading api file")
	errValidatingAPIFile = errors.New("validating api file")
)

// Verify loads the OpenAPI document at path, following external references, and
// validates it.
func Verify(ctx context.Context, path string) error {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.Context = ctx

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return flaterrors.Join(err, errLoadingAPIFile)
	}

	if err := doc.Validate(ctx); err != nil {
		return flaterrors.Join(err, errValidatingAPIFile)
	}

	return nil
}
