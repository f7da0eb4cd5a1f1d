package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go8080/invaders/i8080"
	"github.com/go8080/invaders/i8080host"
	"github.com/go8080/invaders/internal/logger"
)

// Exit codes: 0 success, 1 ROM could not be loaded, 2 the CPU hit an
// unimplemented opcode or invalid operand while running, 3 the host
// window/renderer could not be created.
const (
	exitOK          = 0
	exitROMLoad     = 1
	exitCPUError    = 2
	exitHostFailure = 3
)

func main() {
	var (
		scale    int
		debug    bool
		headless bool
	)

	rootCmd := &cobra.Command{
		Use:   "invaders8080 [rom]",
		Short: "Intel 8080 emulator for the Space Invaders arcade ROM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			romPath := "space-invaders/invaders"
			if len(args) == 1 {
				romPath = args[0]
			}

			if debug {
				logger.SetEcho(os.Stderr)
			}

			rom, err := os.ReadFile(romPath)
			if err != nil {
				logger.Logf("rom", "failed to read %s: %v", romPath, err)
				os.Exit(exitROMLoad)
			}

			cpu := i8080.New()
			cpu.LoadROM(rom, 0)

			machine, err := i8080host.New(cpu, i8080host.Config{
				Scale:    scale,
				Debug:    debug,
				Headless: headless,
			})
			if err != nil {
				logger.Logf("sdl", "failed to start host: %v", err)
				os.Exit(exitHostFailure)
			}
			defer machine.Close()

			if err := machine.Run(); err != nil {
				logger.Logf("cpu", "run failed: %v", err)
				os.Exit(exitCPUError)
			}
			return nil
		},
	}

	rootCmd.Flags().IntVar(&scale, "scale", 2, "integer window scale factor")
	rootCmd.Flags().BoolVarP(&debug, "debug", "v", false, "echo per-instruction trace to stderr")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without a window, for smoke-testing a ROM")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitROMLoad)
	}
}
