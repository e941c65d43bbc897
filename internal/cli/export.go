package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/bank"
	"carbon-quiz-service/internal/config"
	"github.com/spf13/cobra"
)

// NewExportCmd writes every stored submission as CSV.
func NewExportCmd(configPath *string) *cobra.Command {
	var (
		full bool
		out  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored quiz results as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), *configPath, full, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "include section scores, recommendations and answers")
	cmd.Flags().StringVarP(&out, "out", "o", "", "file to write (default stdout)")
	return cmd
}

func runExport(ctx context.Context, configPath string, full bool, out string, stdout io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	store, closeStore, err := openSubmissionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	w := stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if err := app.NewAdminService(store, bank.Default()).Export(ctx, w, full); err != nil {
		return err
	}
	if out != "" {
		log.Printf("exported results to %s", out)
	}
	return nil
}
