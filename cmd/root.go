package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"numbuy/internal/config"
	"numbuy/internal/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "numbuy",
	Short: "CLI 工具：透過 Twilio 搜尋、購買與管理電話號碼",
	Long: "這是一個透過 Twilio REST API 搜尋、購買與管理電話號碼的命令行工具。\n" +
		"不帶子命令執行時會進入互動式主選單。",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMainMenu(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "f", "config.toml", "設定檔路徑")
}

// initApp 載入設定並初始化日誌記錄器，所有子命令共用
func initApp() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logConfig := logger.LoggingConfig{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	}
	if err := logger.InitDefaultLogger(&logConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.GetDefaultLogger().LogConfigValidation(true, nil)

	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
