package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sailfish-platforms/internal/app"
	"sailfish-platforms/internal/types"
)

type showOptions struct {
	Platform string
	Format   string
}

func newShowCommand() *cobra.Command {
	opts := showOptions{}
	cmd := &cobra.Command{
		Use:   "show [PLATFORM]",
		Short: "Print the resolved build profile of one platform",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if opts.Platform != "" && opts.Platform != args[0] {
					return errbuilder.New().
						WithCode(errbuilder.CodeInvalidArgument).
						WithMsg("platform given both as argument and --platform")
				}
				opts.Platform = args[0]
			}
			return runShow(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Platform id")
	cmd.Flags().StringVar(&opts.Format, "format", "yaml", "Output format: yaml or flags")
	return cmd
}

func runShow(ctx context.Context, out io.Writer, opts showOptions) error {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format != "yaml" && format != "flags" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported format: %s", opts.Format))
	}
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RegistryRequest: registryRequest(),
		Platform:        opts.Platform,
	})
	if err != nil {
		return err
	}
	for _, diagnostic := range result.Diagnostics {
		if diagnostic.Severity == types.SeverityWarning {
			log.Ctx(ctx).Warn().Msg(diagnostic.String())
		}
	}
	if format == "flags" {
		for _, flag := range result.Profile.Flags() {
			if _, err := fmt.Fprintln(out, flag); err != nil {
				return err
			}
		}
		return nil
	}
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(types.NewProfileDocument(result.Profile)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode profile").
			WithCause(err)
	}
	return encoder.Close()
}
