package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sailfish-platforms/internal/app"
)

type emitOptions struct {
	Platform string
	Output   string
}

func newEmitCommand() *cobra.Command {
	opts := emitOptions{}
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Write the resolved profile and define flags for a build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmit(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Platform id")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runEmit(ctx context.Context, cmd *cobra.Command, out io.Writer, opts emitOptions) error {
	service := newAppService()
	result, err := service.Emit(ctx, app.EmitRequest{
		RegistryRequest: registryRequest(),
		Platform:        opts.Platform,
		OutputDir:       resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	for _, file := range result.Files {
		fmt.Fprintln(out, file)
	}
	return nil
}
