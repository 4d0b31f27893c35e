package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/icasdri/passthesalt"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PASSTHESALT"

// cli carries the state shared by one command tree.
type cli struct {
	io     Config
	viper  *viper.Viper
	logger *logrus.Logger
	conf   *CLIConfig
}

// NewRootCmd builds the passthesalt command tree around the given streams.
func NewRootCmd(cfg Config) *cobra.Command {
	c := &cli{
		io:     cfg,
		viper:  viper.New(),
		logger: logrus.New(),
		conf:   NewDefaultCLIConfig(),
	}
	c.logger.Out = cfg.Stderr

	cmd := &cobra.Command{
		Use:               "passthesalt",
		Short:             "Public-key authenticated encryption of messages and files",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.loadConfig,
	}
	cmd.SetIn(cfg.Stdin)
	cmd.SetOut(cfg.Stdout)
	cmd.SetErr(cfg.Stderr)

	cmd.PersistentFlags().String("log", c.conf.LogLevel, "debug, info, warn, error")
	cmd.PersistentFlags().String("config", "", "Config file (default is passthesalt.{yaml,toml,json} in the user config dir)")
	cmd.PersistentFlags().String("env-file", ".env", "Environment file to load if present")

	// --identity is accepted as a long alias for --me.
	cmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "identity" {
			name = "me"
		}
		return pflag.NormalizedName(name)
	})

	cmd.AddCommand(
		c.newKeyCmd(),
		c.newEncryptCmd(),
		c.newDecryptCmd(),
	)

	return cmd
}

// Run executes the command tree with args and returns the process exit code.
func Run(args []string, cfg Config) int {
	cmd := NewRootCmd(cfg)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cfg.Stderr, "passthesalt: %v\n", err)
	}
	return ExitCode(err)
}

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	if err := c.bindFlagsLoadViper(cmd); err != nil {
		return err
	}

	if err := c.viper.Unmarshal(c.conf); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(c.conf.LogLevel)
	if err != nil {
		return err
	}
	c.logger.SetLevel(level)

	if file := c.viper.ConfigFileUsed(); file != "" {
		c.logger.Debugf("Using config file: %s", file)
	} else {
		c.logger.Debug("No config file found")
	}

	c.logger.WithFields(logrus.Fields{
		"command":     cmd.Name(),
		"ciphersuite": passthesalt.Ciphersuite,
		"me":          c.conf.Me,
		"output-file": c.conf.OutputFile,
	}).Debug("config loaded")

	return passthesalt.Initialize()
}

// bindFlagsLoadViper binds the executing command's flags, the environment
// and the config file into c.viper.
func (c *cli) bindFlagsLoadViper(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}

	// cmd.Flags() includes flags from this command and all persistent flags from the parent
	if err := c.viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	c.viper.SetEnvPrefix(envPrefix)
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.viper.AutomaticEnv()

	if file := c.viper.GetString("config"); file != "" {
		c.viper.SetConfigFile(file)
	} else {
		c.viper.SetConfigName("passthesalt")
		if dir := defaultConfigDir(); dir != "" {
			c.viper.AddConfigPath(dir)
		}
	}

	// If a config file is found, read it in.
	var notFound viper.ConfigFileNotFoundError
	if err := c.viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
