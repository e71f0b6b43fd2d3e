// Command rosterctl imports, exports and inspects the staff roster against the
// same store the API server uses.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/config"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/gemini"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/repository/kvstore"
	employeeService "github.com/cmlabs-hris/staffsync-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/service/exporter"
	importService "github.com/cmlabs-hris/staffsync-backend-go/internal/service/importer"
	settingsService "github.com/cmlabs-hris/staffsync-backend-go/internal/service/settings"
	"github.com/spf13/cobra"
)

// services is the wiring shared by every subcommand.
type services struct {
	kv        database.KV
	settings  settings.SettingsService
	employees employee.EmployeeService
	importer  importer.ImportService
	exporter  *exporter.ExportService
}

func (s *services) Close() error {
	return s.kv.Close()
}

var (
	storageDriver string
	sqlitePath    string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:           "rosterctl",
	Short:         "Manage the KSRTC staff roster from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "storage driver override: sqlite, postgres or memory")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite file override")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(importCmd, exportCmd, templateCmd, settingsCmd)
}

// openServices wires the store selected by configuration and flags.
func openServices() (*services, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if storageDriver != "" {
		cfg.Storage.Driver = storageDriver
	}
	if sqlitePath != "" {
		cfg.Storage.SQLitePath = sqlitePath
	}

	kv, err := database.Open(cfg.Storage.Driver, cfg.Storage.SQLitePath, cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}

	settingsSvc := settingsService.NewSettingsService(kvstore.NewSettingsRepository(kv))
	employeeSvc := employeeService.NewEmployeeService(kvstore.NewEmployeeRepository(kv))

	return &services{
		kv:        kv,
		settings:  settingsSvc,
		employees: employeeSvc,
		importer:  importService.NewImportService(settingsSvc, employeeSvc, gemini.NewParser(cfg.Gemini.APIKey, cfg.Gemini.Model)),
		exporter:  exporter.NewExportService(settingsSvc, employeeSvc),
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
