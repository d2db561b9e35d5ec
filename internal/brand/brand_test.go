package brand_test

import (
	"brandkit/internal/brand"
	"brandkit/pkg/domain"
	"brandkit/pkg/llm/gemini"
	mockllm "brandkit/pkg/llm/mock"
	"brandkit/pkg/serrors"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGenerator(t *testing.T) (*mockllm.MockGenerator, brand.Generator) {
	t.Helper()

	model := mockllm.NewMockGenerator(gomock.NewController(t))

	return model, brand.New(model)
}

func TestGenerate_ExtractsAndFilters(t *testing.T) {
	model, g := newTestGenerator(t)
	model.EXPECT().Ready().Return(nil)
	model.EXPECT().Generate(gomock.Any(), brand.Prompt("Designer from Praia", "Ana")).Return("Sure! Here you go:\n```json\n"+`[
		{"brandName": "Ana Studio", "colors": {"primary": "#112233", "accent": "#445566", "neutral": "#EEEEEE"}, "tagline": "Design with island light"},
		{"brandName": "Ana Creative Design Lab", "colors": {}, "tagline": "Too many words"},
		{"brandName": "Ana-Co", "tagline": "Punctuation is not allowed"},
		{"brandName": "Praia", "colors": {"primary": "#000000"}, "tagline": "one two three four five six seven eight nine ten eleven"},
		{"brandName": "Morabeza", "extra": [1, 2], "tagline": "Warmth in every pixel"}
	]`+"\n```\nEnjoy!", nil)

	res, err := g.Generate(context.Background(), " Designer from Praia ", "Ana")
	require.NoError(t, err)
	require.Equal(t, []domain.BrandIdentity{
		{
			BrandName: "Ana Studio",
			Colors:    domain.BrandColors{Primary: "#112233", Accent: "#445566", Neutral: "#EEEEEE"},
			Tagline:   "Design with island light",
		},
		{BrandName: "Morabeza", Tagline: "Warmth in every pixel"},
	}, res)
}

func TestGenerate_LeadingBracketInProseBreaksParse(t *testing.T) {
	model, g := newTestGenerator(t)
	model.EXPECT().Ready().Return(nil)
	model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`Options [draft]: [{"brandName":"Ok"}]`, nil)

	_, err := g.Generate(context.Background(), "bio", "name")
	require.ErrorIs(t, err, serrors.ErrBadData)
	require.Equal(t, "Failed to generate brand identity", serrors.MessageOf(err))
}

func TestGenerate_MalformedJSON(t *testing.T) {
	model, g := newTestGenerator(t)
	model.EXPECT().Ready().Return(nil)
	model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`[{"brandName": "Broken", }`+"]", nil)

	_, err := g.Generate(context.Background(), "bio", "name")
	require.ErrorIs(t, err, serrors.ErrBadData)

	res := domain.Fail[[]domain.BrandIdentity](err)
	require.False(t, res.Success)
	require.Equal(t, "Failed to generate brand identity", res.Error)
}

func TestGenerate_TrailingContentIsMalformed(t *testing.T) {
	replies := []string{
		`Here: [] and the real list [{"brandName":"Acme","tagline":"Fast"}]`,
		`[{"brandName":"Acme","tagline":"Fast"}] garbage {{{ ]`,
	}
	for _, reply := range replies {
		model, g := newTestGenerator(t)
		model.EXPECT().Ready().Return(nil)
		model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(reply, nil)

		res, err := g.Generate(context.Background(), "bio", "name")
		require.ErrorIs(t, err, serrors.ErrBadData, reply)
		require.Nil(t, res)
		require.Equal(t, "Failed to generate brand identity", serrors.MessageOf(err))
	}
}

func TestGenerate_NoArray(t *testing.T) {
	model, g := newTestGenerator(t)
	model.EXPECT().Ready().Return(nil)
	model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("I cannot help with that.", nil)

	_, err := g.Generate(context.Background(), "bio", "name")
	require.ErrorIs(t, err, serrors.ErrBadData)
}

func TestGenerate_RequiresKeyThenParams(t *testing.T) {
	model, g := newTestGenerator(t)

	model.EXPECT().Ready().Return(gemini.ErrNoAPIKey)
	_, err := g.Generate(context.Background(), "", "")
	require.ErrorIs(t, err, serrors.ErrNotConfigured)

	model.EXPECT().Ready().Return(nil)
	_, err = g.Generate(context.Background(), "bio", "  ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "Bio and name are required", err.Error())
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	model, g := newTestGenerator(t)
	model.EXPECT().Ready().Return(nil)
	model.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))

	_, err := g.Generate(context.Background(), "bio", "name")
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestAcceptable(t *testing.T) {
	cases := []struct {
		name string
		in   domain.BrandIdentity
		ok   bool
	}{
		{"one word", domain.BrandIdentity{BrandName: "Nova", Tagline: "Bright"}, true},
		{"two words", domain.BrandIdentity{BrandName: "Nova Labs"}, true},
		{"digits", domain.BrandIdentity{BrandName: "Studio 54"}, true},
		{"three words", domain.BrandIdentity{BrandName: "Nova Labs Inc"}, false},
		{"empty", domain.BrandIdentity{BrandName: "  "}, false},
		{"punctuation", domain.BrandIdentity{BrandName: "Nova!"}, false},
		{"accented", domain.BrandIdentity{BrandName: "Café"}, false},
		{"ten word tagline", domain.BrandIdentity{BrandName: "Nova", Tagline: strings.Repeat("w ", 10)}, true},
		{"eleven word tagline", domain.BrandIdentity{BrandName: "Nova", Tagline: strings.Repeat("w ", 11)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ok, brand.Acceptable(tc.in))
		})
	}
}
