// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the austral-map CLI, which converts
// study-plan and academic-record spreadsheets into the JSON consumed by the
// curriculum map.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FranCalveyra/austral-map-v2/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built in PersistentPreRunE; tests replace it with zap.NewNop().
var logger = zap.NewNop()

// rootCmd is the base command for the austral-map CLI.
var rootCmd = &cobra.Command{
	Use:   "austral-map",
	Short: "Convert study-plan spreadsheets into curriculum JSON",
	Long: `austral-map turns university spreadsheets into the normalized course schema
used by the curriculum map: courses, their year and semester, credits, and
prerequisite relationships in both directions.

Each conversion is a subcommand: student reads an academic record, plans reads
a workbook of study plans, sheets dumps every sheet as raw records, and
catalog loads generated plans into a SQLite file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./austral-map.yaml or ~/.config/austral-map/austral-map.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("office-bin", "", "LibreOffice binary used to re-encode legacy .xls files (default: soffice, then libreoffice)")
	rootCmd.PersistentFlags().String("office-out", "", "directory for re-encoded .xlsx files (default: next to the source)")

	mustBind("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	mustBind("office.binary", rootCmd.PersistentFlags().Lookup("office-bin"))
	mustBind("office.output_dir", rootCmd.PersistentFlags().Lookup("office-out"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("austral-map")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "austral-map"))
		}
	}

	viper.SetEnvPrefix("AUSTRAL_MAP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves every setting from flags, config file, and environment.
func loadConfig() types.Config {
	return types.Config{
		Verbose: viper.GetBool("verbose"),
		Office: types.OfficeConfig{
			Binary:    viper.GetString("office.binary"),
			OutputDir: viper.GetString("office.output_dir"),
		},
		Student: types.StudentConfig{
			Output: viper.GetString("student.output"),
		},
		Plans: types.PlansConfig{
			Input:     viper.GetString("plans.input"),
			OutputDir: viper.GetString("plans.output_dir"),
			Format:    types.OutputFormat(viper.GetString("plans.format")),
			DB:        viper.GetString("plans.db"),
		},
		Sheets: types.SheetsConfig{
			Input:     viper.GetString("sheets.input"),
			OutputDir: viper.GetString("sheets.output_dir"),
		},
	}
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag for %s: %v", key, err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
