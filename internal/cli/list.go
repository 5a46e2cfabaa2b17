package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sailfish-platforms/internal/app"
	"sailfish-platforms/internal/shared"
)

type listOptions struct {
	Filter string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print known platform ids on one line",
		Example: `  sailfish-platforms list
  sailfish-platforms list --filter 'mcu == "atmega2560" && "CORE_XY" in defines'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Boolean expression over id, mcu, programmer, board_directory, defines, squeeze, origin")
	_ = viper.BindPFlag("filter", cmd.Flags().Lookup("filter"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, out io.Writer, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		RegistryRequest: registryRequest(),
		Filter:          resolveString(cmd, opts.Filter, "filter", "filter"),
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, shared.JoinIDs(result.IDs))
	return err
}
