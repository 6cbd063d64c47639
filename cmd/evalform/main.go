package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/common"
	"github.com/Veraticus/contractor-evaluation/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// annotationFullScreen marks commands that take over the terminal.
const annotationFullScreen = "fullscreen"

var (
	cfgFile string
	version = "dev"
	logFile *os.File
	rootCmd = &cobra.Command{
		Use:   "evalform",
		Short: "★ Contractor evaluation form",
		Long: `evalform: rate a contractor on a finished project and submit the
evaluation to Salesforce or to a local database.

Run "evalform evaluate <project-id>" to open the form.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/evalform/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "log file used while the full-screen form is open")
	rootCmd.PersistentFlags().String("backend", "", "evaluation backend (salesforce, local)")
	rootCmd.PersistentFlags().String("database", "", "database path for the local backend")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("backend.kind", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("database"))

	viper.SetDefault("logging.file", "~/.local/share/evalform/evalform.log")
	viper.SetDefault("backend.timeout", 30*time.Second)

	// Add commands
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(submitCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(localCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if logFile != nil {
		_ = logFile.Close()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, cliError(err))
		os.Exit(1)
	}
}

// cliError prefers the user-facing message of a UserError.
func cliError(err error) string {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return userErr.Error()
	}
	return err.Error()
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// A .env file in the working directory is optional.
	_ = godotenv.Load()

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(filepath.Join(home, ".config", "evalform"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("EVALFORM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Set up logging
	if err := setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging(cmd *cobra.Command) error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")

	var w io.Writer = os.Stderr
	noColor := os.Getenv("NO_COLOR") != ""

	// Full-screen mode owns the terminal, so logs go to a file.
	if isFullScreen(cmd) {
		f, err := openLogFile(config.ExpandPath(viper.GetString("logging.file")))
		if err != nil {
			return err
		}
		logFile = f
		w = f
		noColor = true
	}

	return common.SetupLogger(w, level, format, noColor)
}

// isFullScreen reports whether cmd will run the full-screen form.
func isFullScreen(cmd *cobra.Command) bool {
	if cmd == nil || cmd.Annotations[annotationFullScreen] != "true" {
		return false
	}
	plain, err := cmd.Flags().GetBool("plain")
	return err == nil && !plain
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "evalform %s\n", version)
		},
	}
}
