// @title PetCare Registry API
// @version 1.0
// @description Registro de mascotas por dispositivo, turnos, tienda y asistente de demo.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"petcare-registry/internal/config"
	"petcare-registry/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	cfg config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "petcare-api",
	Short:         "PetCare registry HTTP service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zl, ok := log.(*logger.ZapLogger); ok {
			_ = zl.Sync()
		}
	},
}

func main() {
	// sin subcomando se comporta como "serve"
	rootCmd.RunE = serveCmd.RunE

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
