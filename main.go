package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"denogotchi/internal/config"
	"denogotchi/internal/pet"
	"denogotchi/internal/ui"
)

const version = "v1.0.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "denogotchi",
		Short: "Deno - a tiny dino that lives in your terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Println(version)
				return nil
			}
			return runGame()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().BoolP("version", "v", false, "print version information")
	rootCmd.AddCommand(statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGame() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	store := pet.NewStore(cfg.SavePath)
	state := store.Load()

	mcfg := pet.DefaultConfig()
	mcfg.DecayInterval = cfg.DecayInterval
	mcfg.AutosaveInterval = cfg.AutosaveInterval
	mcfg.IdleFrame = cfg.IdleFrame
	mcfg.ActionFrameMin = cfg.ActionFrameMin
	mcfg.ActionFrameMax = cfg.ActionFrameMax
	mcfg.DialogDuration = cfg.DialogDuration
	mcfg.FrameOverride = ui.SecretIdleOverride

	machine := pet.NewMachine(state, store, mcfg)

	program := tea.NewProgram(ui.NewModel(machine))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		program.Quit()
	}()

	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	// Last line of defense against losing the final ticks' worth of changes.
	machine.Save()

	if m, ok := final.(ui.Model); ok && m.PoweringOff {
		powerOff(cfg.ShutdownCommand)
	}
	return nil
}

// powerOff flushes filesystem buffers and hands off to the configured
// shutdown command. An empty command means exit only.
func powerOff(cmdline []string) {
	log.Printf("Power off requested")
	if err := exec.Command("sync").Run(); err != nil {
		log.Printf("sync failed: %v", err)
	}
	if len(cmdline) == 0 {
		return
	}
	if err := exec.Command(cmdline[0], cmdline[1:]...).Run(); err != nil {
		log.Printf("Shutdown command failed, exiting only: %v", err)
	}
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the pet's saved state without opening the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		state := pet.NewStore(cfg.SavePath).Load()
		fmt.Print(ui.StatusCard(state))
		return nil
	},
}
