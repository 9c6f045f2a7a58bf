package document

import (
	_ "embed"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSource string

// Parse decodes a YAML (or JSON) config document, checks it against the CUE
// schema and the uniqueness rules of model.Document.
func Parse(data []byte) (*model.Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "failed to parse config document",
			goerr.V("reason", err.Error()),
		)
	}
	if raw == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "config document is empty")
	}

	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc model.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "failed to decode config document",
			goerr.V("reason", err.Error()),
		)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

func validateSchema(raw any) error {
	cctx := cuecontext.New()

	schema := cctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return goerr.Wrap(err, "failed to compile config schema")
	}

	value := cctx.Encode(raw)
	if err := value.Err(); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "failed to encode config document",
			goerr.V("reason", err.Error()),
		)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "config document does not match schema",
			goerr.V("reason", cueerrors.Details(err, nil)),
		)
	}

	return nil
}
