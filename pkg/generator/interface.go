package generator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/ensembledata/ensembledata-go/pkg/config"
	"github.com/ensembledata/ensembledata-go/pkg/generator/golang"
	"github.com/ensembledata/ensembledata-go/pkg/ir"
	"github.com/ensembledata/ensembledata-go/pkg/openapi"
)

// Generator renders the façade files of one client from the IR.
type Generator interface {
	// Generate writes the files and returns their paths.
	Generate(client config.Client, in ir.IR) ([]string, error)
}

// GenerateOptions contains options for façade generation
type GenerateOptions struct {
	ConfigPath   string
	SingleClient string
	Fallback     FallbackOptions
}

// FallbackOptions describe a single client when no config file is provided
type FallbackOptions struct {
	Spec        string
	OutDir      string
	PackageName string
	IncludeTags []string
	ExcludeTags []string
}

// Service loads documents, builds the IR and drives a Generator.
type Service struct {
	gen Generator
	log *zap.Logger
}

// NewService creates a service rendering Go façades.
func NewService(log *zap.Logger) *Service {
	return NewServiceWithGenerator(golang.NewGoGenerator(), log)
}

// NewServiceWithGenerator creates a service around gen. A nil log discards output.
func NewServiceWithGenerator(gen Generator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, log: log}
}

// Generate generates façades based on the provided options
func (s *Service) Generate(ctx context.Context, opts GenerateOptions) error {
	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			return err
		}
		return s.GenerateFromConfig(ctx, cfg, opts.SingleClient)
	}

	fb := opts.Fallback
	if fb.Spec == "" || fb.OutDir == "" || fb.PackageName == "" {
		return fmt.Errorf("either config path or spec, output directory and package name must be provided")
	}
	cfg := &config.Config{
		Spec: fb.Spec,
		Clients: []config.Client{{
			OutDir:      fb.OutDir,
			PackageName: fb.PackageName,
			IncludeTags: fb.IncludeTags,
			ExcludeTags: fb.ExcludeTags,
		}},
	}
	if err := cfg.Normalize(); err != nil {
		return err
	}
	return s.GenerateFromConfig(ctx, cfg, "")
}

// GenerateFromConfig generates every client of cfg, or only onlyClient when set.
func (s *Service) GenerateFromConfig(ctx context.Context, cfg *config.Config, onlyClient string) error {
	doc, err := openapi.LoadDocument(ctx, cfg.Spec)
	if err != nil {
		return err
	}
	s.log.Debug("loaded openapi document", zap.String("spec", cfg.Spec), zap.Int("paths", doc.Paths.Len()))

	for _, client := range cfg.Clients {
		if onlyClient != "" && client.Name != onlyClient {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.generateClient(doc, client); err != nil {
			return fmt.Errorf("client %s: %w", client.Name, err)
		}
	}
	return nil
}

func (s *Service) generateClient(doc *openapi.Document, client config.Client) error {
	fullIR, err := buildIR(doc, client)
	if err != nil {
		return err
	}
	filtered, err := filterIR(fullIR, client)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(client.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := s.executeCommand(client.GetPreCommand(), client.OutDir, "pre-command"); err != nil {
		return err
	}

	files, err := s.gen.Generate(client, filtered)
	if err != nil {
		return err
	}
	s.log.Info("generated client",
		zap.String("client", client.Name),
		zap.String("out_dir", client.OutDir),
		zap.Int("groups", len(filtered.Groups)),
		zap.Int("endpoints", filtered.EndpointCount()),
		zap.Strings("files", files),
	)

	return s.executeCommand(client.GetPostCommand(), client.OutDir, "post-command")
}

// executeCommand runs command (Docker Compose array form) in workDir
func (s *Service) executeCommand(command []string, workDir, commandLabel string) error {
	if len(command) == 0 {
		return nil
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmdDescription := strings.Join(command, " ")
	s.log.Debug("running command", zap.String("label", commandLabel), zap.String("command", cmdDescription))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s (%s) failed: %w", commandLabel, cmdDescription, err)
	}
	return nil
}
