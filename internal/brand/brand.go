// Package brand generates brand identity proposals with a text generation
// model.
package brand

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/llm"
	"brandkit/pkg/logger"
	"brandkit/pkg/serrors"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const failureMessage = "Failed to generate brand identity"

var errParams = serrors.With(serrors.ErrBadRequest, "Bio and name are required") //nolint: gochecknoglobals

const promptTemplate = `You are a brand strategist. Create 3 brand identities for the person below.

Name: %s
Bio: %s

Each brand name must be one or two words using only letters and digits so it works as a domain name.
Each tagline must have at most 10 words.
Colors are hex strings.

Respond with only a JSON array of exactly 3 objects shaped like:
[{"brandName": "...", "colors": {"primary": "#RRGGBB", "accent": "#RRGGBB", "neutral": "#RRGGBB"}, "tagline": "..."}]`

// Prompt renders the generation prompt for a person.
func Prompt(bio, name string) string {
	return fmt.Sprintf(promptTemplate, name, bio)
}

type generator struct {
	model llm.Generator
}

// New creates a brand Generator backed by model.
func New(model llm.Generator) Generator {
	return &generator{model: model}
}

// Generate asks the model for three identities and keeps those passing
// Acceptable. The result may hold fewer than three entries.
func (g *generator) Generate(ctx context.Context, bio, name string) ([]domain.BrandIdentity, error) {
	if err := g.model.Ready(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	bio, name = strings.TrimSpace(bio), strings.TrimSpace(name)
	if bio == "" || name == "" {
		return nil, errParams
	}

	text, err := g.model.Generate(ctx, Prompt(bio, name))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, failureMessage)
	}

	raw, err := extractArray(text)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadData, err, failureMessage)
	}
	parsed, err := parseIdentities(raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadData, err, failureMessage)
	}

	out := filter(parsed)
	logger.Debug(ctx, "brand identities generated", zap.Int("parsed", len(parsed)), zap.Int("kept", len(out)))

	return out, nil
}
