package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/heartmarshall/placement-backend/internal/config"
	"github.com/heartmarshall/placement-backend/internal/domain"
	"github.com/heartmarshall/placement-backend/internal/revision"
)

// trackedModels lists every model whose mutations leave a revision trail.
var trackedModels = []string{domain.ModelCompany, domain.ModelOpportunity}

// NewRegistry registers the tracked models with the exclude and redact
// rules of cfg. cfg must have been validated so the parsed maps are set.
// A rule naming a model that is not tracked is an error.
func NewRegistry(cfg config.RevisionConfig) (*revision.Registry, error) {
	for _, rules := range []map[string][]string{cfg.Exclude, cfg.Redact} {
		for model := range rules {
			if !slices.Contains(trackedModels, model) {
				return nil, fmt.Errorf("revision field rule for untracked model %q", model)
			}
		}
	}

	reg := revision.NewRegistry()
	for _, model := range trackedModels {
		var opts []revision.Option
		if fields := cfg.Exclude[model]; len(fields) > 0 {
			opts = append(opts, revision.Exclude(fields...))
		}
		for _, field := range cfg.Redact[model] {
			opts = append(opts, revision.Redact(field, fingerprint))
		}
		reg.Register(model, opts...)
	}
	return reg, nil
}

// fingerprint replaces a value with a short digest of its JSON encoding.
// Equal values keep equal digests, so changes stay visible in the trail
// without storing the value itself. nil stays nil.
func fingerprint(_ string, v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "redacted"
	}
	sum := sha256.Sum256(b)
	return "sha256:" + hex.EncodeToString(sum[:6])
}
