package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/arkanhealth/jadwal_backend/cmd/http"
	systemcmd "github.com/arkanhealth/jadwal_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "jadwal",
	Short: "Jadwal scheduling engine for therapy centers.",
	Long: `Jadwal is the scheduling and rescheduling backend for therapy centers.
It generates session plans from therapist availability and student preferences,
detects calendar conflicts, and applies freeze-driven reschedules atomically.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
