package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensembledata/ensembledata-go/pkg/config"
	"github.com/ensembledata/ensembledata-go/pkg/ir"
)

type recordingGenerator struct {
	calls map[string]ir.IR
	err   error
}

func (g *recordingGenerator) Generate(client config.Client, in ir.IR) ([]string, error) {
	if g.calls == nil {
		g.calls = map[string]ir.IR{}
	}
	g.calls[client.Name] = in
	return nil, g.err
}

func absFixture(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(fixture)
	require.NoError(t, err)
	return p
}

func TestService_GenerateFallback(t *testing.T) {
	out := t.TempDir()
	err := NewService(nil).Generate(context.Background(), GenerateOptions{
		Fallback: FallbackOptions{
			Spec:        fixture,
			OutDir:      out,
			PackageName: "client",
			ExcludeTags: []string{"^internal$"},
		},
	})
	require.NoError(t, err)

	for _, name := range []string{"customer.go", "tiktok.go", "youtube.go"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(out, "internal.go"))
	assert.True(t, os.IsNotExist(err))

	raw, err := os.ReadFile(filepath.Join(out, "youtube.go"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "func (e *YouTubeEndpoints) ChannelIDToUsername(")
}

func TestService_GenerateRequiresInput(t *testing.T) {
	err := NewService(nil).Generate(context.Background(), GenerateOptions{Fallback: FallbackOptions{Spec: fixture}})
	assert.Error(t, err)
}

func TestService_GenerateFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "edgen.yaml")
	cfg := fmt.Sprintf(`
spec: %s
clients:
  - name: public
    outDir: %s
    packageName: client
    excludeTags: ["internal"]
    postCommand: ["touch", "post.marker"]
  - name: everything
    outDir: %s
    packageName: all
`, absFixture(t), filepath.Join(dir, "public"), filepath.Join(dir, "all"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	gen := &recordingGenerator{}
	svc := NewServiceWithGenerator(gen, nil)
	require.NoError(t, svc.Generate(context.Background(), GenerateOptions{ConfigPath: cfgPath, SingleClient: "public"}))

	require.Len(t, gen.calls, 1)
	assert.Equal(t, 6, gen.calls["public"].EndpointCount())
	_, err := os.Stat(filepath.Join(dir, "public", "post.marker"))
	assert.NoError(t, err)

	require.NoError(t, svc.Generate(context.Background(), GenerateOptions{ConfigPath: cfgPath}))
	assert.Equal(t, 7, gen.calls["everything"].EndpointCount())
}

func TestService_GeneratorErrorNamesClient(t *testing.T) {
	gen := &recordingGenerator{err: errors.New("disk full")}
	cfg := &config.Config{Spec: absFixture(t), Clients: []config.Client{{Name: "client", OutDir: t.TempDir(), PackageName: "client"}}}

	err := NewServiceWithGenerator(gen, nil).GenerateFromConfig(context.Background(), cfg, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "client client")
	assert.Contains(t, err.Error(), "disk full")
}

func TestService_FailingPreCommand(t *testing.T) {
	gen := &recordingGenerator{}
	cfg := &config.Config{Spec: absFixture(t), Clients: []config.Client{{
		Name: "client", OutDir: t.TempDir(), PackageName: "client",
		PreCommand: []string{"edgen-no-such-binary"},
	}}}

	err := NewServiceWithGenerator(gen, nil).GenerateFromConfig(context.Background(), cfg, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pre-command")
	assert.Empty(t, gen.calls)
}

func TestService_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := &config.Config{Spec: absFixture(t), Clients: []config.Client{{Name: "client", OutDir: t.TempDir(), PackageName: "client"}}}

	err := NewServiceWithGenerator(&recordingGenerator{}, nil).GenerateFromConfig(ctx, cfg, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvenience(t *testing.T) {
	require.NoError(t, ValidateSpec(context.Background(), fixture))
	assert.Error(t, GenerateFromConfig(context.Background(), filepath.Join(t.TempDir(), "missing.yaml")))
}
