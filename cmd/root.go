package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	log "github.com/harlequix/bitguard/log"
	"github.com/harlequix/bitguard/version"
)

var logger = log.NewLogger("CLI")

var (
	configFile  string
	versionFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "bitguard",
	Short: "Hamming and Fletcher error detection for binary strings",
	Long: `bitguard encodes text messages with a Hamming code or a Fletcher
checksum, sends them over a noisy link and checks them on arrival.

Start a receiver with "bitguard listen" and send to it with
"bitguard send <message> <fletcher|hamming> --flip 5".`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	Run: func(cmd *cobra.Command, args []string) {
		if !versionFlag {
			cmd.Help()
			return
		}
		fmt.Println("Build Date:", version.BuildDate)
		fmt.Println("Git Commit:", version.GitCommit)
		fmt.Println("Version:", version.Version)
		fmt.Println("Go Version:", version.GoVersion)
		fmt.Println("OS / Arch:", version.OsArch)
	},
}

// Config collects every setting the subcommands read from viper.
type Config struct {
	LogLevel string
	Logfile  string

	Host         string
	Port         int
	Serial       string
	BaudRate     int
	ReadTimeout  time.Duration
	Algorithm    string
	ChecksumSize int

	Addr        string
	DialTimeout time.Duration
	FlipChance  int
}

func init() {
	viper.SetDefault("FlipChance", 0)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("loglevel", "warning", "log level (trace, debug, info, warning, error)")
	rootCmd.PersistentFlags().String("logfile", "", "mirror log entries into <logfile>.info/.warn/.error")
	viper.BindPFlag("LogLevel", rootCmd.PersistentFlags().Lookup("loglevel"))
	viper.BindPFlag("Logfile", rootCmd.PersistentFlags().Lookup("logfile"))
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "print version information")
}

func Execute() error {
	return rootCmd.Execute()
}

// readConfigFile loads the file named by --config, if any.
func readConfigFile() error {
	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	if err := readConfigFile(); err != nil {
		return err
	}
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Logfile != "" {
		log.AddTracer(cfg.Logfile)
	}
	logger.WithField("config", cfg).Debug("Configuration loaded")
	return nil
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// bindFlags maps flags of the running command onto viper keys. Binding
// happens at run time because several commands share keys.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}
