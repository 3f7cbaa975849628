package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ensembledata/ensembledata-go/pkg/generator"
	"github.com/ensembledata/ensembledata-go/pkg/openapi"
)

type FallbackParams struct {
	Spec        string
	OutDir      string
	PackageName string
	IncludeTags []string
	ExcludeTags []string
}

type RunGenerateParams struct {
	ConfigPath   string
	SingleClient string
	Fallback     FallbackParams
}

func RunValidate(ctx context.Context, log *zap.Logger, input string) error {
	if input == "" {
		return errors.New("--input is required")
	}
	if err := openapi.ValidateDocument(ctx, input); err != nil {
		return err
	}
	log.Info("openapi document is valid", zap.String("input", input))
	return nil
}

func RunGenerate(ctx context.Context, log *zap.Logger, p RunGenerateParams) error {
	if p.ConfigPath == "" {
		if p.Fallback.Spec == "" || p.Fallback.OutDir == "" || p.Fallback.PackageName == "" {
			return errors.New("either --config or all of --input, --out, --package-name must be provided")
		}
	}
	return generator.NewService(log).Generate(ctx, generator.GenerateOptions{
		ConfigPath:   p.ConfigPath,
		SingleClient: p.SingleClient,
		Fallback: generator.FallbackOptions{
			Spec:        p.Fallback.Spec,
			OutDir:      absPath(p.Fallback.OutDir),
			PackageName: p.Fallback.PackageName,
			IncludeTags: p.Fallback.IncludeTags,
			ExcludeTags: p.Fallback.ExcludeTags,
		},
	})
}
