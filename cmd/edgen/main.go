package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cli "github.com/ensembledata/ensembledata-go/internal/cli"
	"github.com/ensembledata/ensembledata-go/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var verbose bool
	log := zap.NewNop()

	root := &cobra.Command{
		Use:           "edgen",
		Short:         "Generate EnsembleData endpoint methods from the OpenAPI document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.NewConsole(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenerateCmd(func() *zap.Logger { return log }))
	root.AddCommand(newValidateCmd(func() *zap.Logger { return log }))

	err := root.ExecuteContext(ctx)
	_ = log.Sync()
	if err != nil {
		logging.NewConsole(false).Error("edgen failed", zap.Error(err))
		os.Exit(1)
	}
}

func newGenerateCmd(logger func() *zap.Logger) *cobra.Command {
	var configPath string
	var singleClient string
	var input string
	var outDir string
	var packageName string
	var includeTags []string
	var excludeTags []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate endpoint group files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cmd.Context(), logger(), cli.RunGenerateParams{
				ConfigPath:   configPath,
				SingleClient: singleClient,
				Fallback: cli.FallbackParams{
					Spec:        input,
					OutDir:      outDir,
					PackageName: packageName,
					IncludeTags: includeTags,
					ExcludeTags: excludeTags,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to edgen.yaml config")
	cmd.Flags().StringVar(&singleClient, "client", "", "Generate only the named client from config")
	// Fallback single-client flags
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI document file or URL (yaml/json)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&packageName, "package-name", "", "Go package name of the generated files")
	cmd.Flags().StringArrayVar(&includeTags, "include-tags", nil, "Regex patterns for tags to include")
	cmd.Flags().StringArrayVar(&excludeTags, "exclude-tags", nil, "Regex patterns for tags to exclude")

	return cmd
}

func newValidateCmd(logger func() *zap.Logger) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(cmd.Context(), logger(), input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI document file or URL (yaml/json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
