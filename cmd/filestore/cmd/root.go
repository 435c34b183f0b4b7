package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aweris/filestore"
)

var rootCmd = &cobra.Command{
	Use:           "filestore",
	Short:         "Content-addressed file store CLI",
	Long:          "Store, retrieve and delete deduplicated content by key.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ~/.config/filestore/config.yaml)")
	flags.String("root", "", "store root directory (default: ~/.local/share/filestore)")
	flags.String("lock", "", "locking mode: process, file or none (default: process)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default: info)")
	flags.Int("concurrency", 0, "parallel operations for put, stats and check (default: 4)")

	viper.BindPFlag("root", flags.Lookup("root"))
	viper.BindPFlag("lock", flags.Lookup("lock"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FILESTORE")
	viper.AutomaticEnv()
	viper.SetDefault("root", defaultRoot())
	viper.SetDefault("lock", string(filestore.LockProcess))
	viper.SetDefault("log_level", "info")
	viper.SetDefault("concurrency", 4)

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "filestore")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "filestore")
	}
	return ".filestore"
}

func defaultRoot() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "filestore")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "filestore")
	}
	return ".filestore"
}

func concurrency() int {
	if n := viper.GetInt("concurrency"); n > 0 {
		return n
	}
	return 4
}

func openStore() (*filestore.Store, error) {
	mode, err := filestore.ParseLockMode(viper.GetString("lock"))
	if err != nil {
		return nil, err
	}
	return filestore.Open(viper.GetString("root"),
		filestore.WithLockMode(mode),
		filestore.WithConcurrency(concurrency()),
	)
}

func newLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("log_level"))); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// reportError prints a short message for the user and logs the details at
// the severity the store assigns to the error.
func reportError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", filestore.UserMessage(err))
	newLogger().Log(context.Background(), filestore.SeverityOf(err).Level(), "command failed",
		"severity", filestore.SeverityOf(err),
		"error", err,
	)
}

func parseKeys(args []string) ([]filestore.FileKey, error) {
	keys := make([]filestore.FileKey, 0, len(args))
	for _, arg := range args {
		k, err := filestore.ParseKey(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
