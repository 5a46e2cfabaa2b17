package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sailfish-platforms/internal/app"
	"sailfish-platforms/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "SAILFISH"

var newAppService = app.NewService

type RootConfig struct {
	ConfigFile      string
	LogLevel        string
	PlatformsFile   string
	NoUserPlatforms bool
}

func Execute() {
	root := newRootCommand()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "sailfish-platforms",
		Short:         "Resolve Sailfish firmware build profiles",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.PlatformsFile, "platforms-file", "", "User platform file (default ~/.sailfish_platforms.yaml)")
	flags.BoolVar(&cfg.NoUserPlatforms, "no-user-platforms", false, "Ignore the per-user platform file")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("platforms_file", flags.Lookup("platforms-file"))
	_ = viper.BindPFlag("no_user_platforms", flags.Lookup("no-user-platforms"))

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newEmitCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("sailfish-platforms")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/sailfish-platforms")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes to stderr so command output on stdout stays
// usable from build scripts.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func registryRequest() app.RegistryRequest {
	return app.RegistryRequest{
		PlatformsFile:     viper.GetString("platforms_file"),
		SkipUserPlatforms: viper.GetBool("no_user_platforms"),
	}
}

func exitCodeForError(err error) int {
	var (
		extension *core.ExtensionLoadError
		unknown   *core.UnknownPlatformError
		invalid   *core.InvalidDefineError
		malformed *core.MalformedBaselineError
	)
	switch {
	case errors.As(err, &extension):
		return 2
	case errors.As(err, &unknown):
		return 3
	case errors.As(err, &invalid):
		return 4
	case errors.As(err, &malformed):
		return 5
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeNotFound:
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 6
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
