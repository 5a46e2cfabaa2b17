package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sailfish-platforms/internal/app"
	"sailfish-platforms/internal/types"
)

type validateOptions struct {
	Strict  bool
	Notices bool
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Resolve every platform and check display strings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on display warnings")
	cmd.Flags().BoolVar(&opts.Notices, "notices", false, "Also print notices")
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, out io.Writer, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		RegistryRequest: registryRequest(),
		Strict:          resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	for _, diagnostic := range result.Diagnostics {
		if diagnostic.Severity == types.SeverityNotice && !opts.Notices {
			continue
		}
		if _, writeErr := fmt.Fprintln(out, diagnostic.String()); writeErr != nil {
			return writeErr
		}
	}
	if err != nil {
		return err
	}
	if result.Extension != "" {
		_, err = fmt.Fprintf(out, "validated: %d platforms (user platforms from %s)\n", result.Platforms, result.Extension)
		return err
	}
	_, err = fmt.Fprintf(out, "validated: %d platforms\n", result.Platforms)
	return err
}
