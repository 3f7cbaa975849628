package generator

import (
	"context"

	"github.com/ensembledata/ensembledata-go/pkg/config"
	"github.com/ensembledata/ensembledata-go/pkg/openapi"
)

// GenerateFromConfig is a convenience function for generating from a config file
func GenerateFromConfig(ctx context.Context, configPath string, singleClient ...string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	onlyClient := ""
	if len(singleClient) > 0 {
		onlyClient = singleClient[0]
	}
	return NewService(nil).GenerateFromConfig(ctx, cfg, onlyClient)
}

// ValidateSpec validates an OpenAPI document file or URL
func ValidateSpec(ctx context.Context, specPath string) error {
	return openapi.ValidateDocument(ctx, specPath)
}
