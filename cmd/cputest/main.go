package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go8080/invaders/cputest"
	"github.com/go8080/invaders/i8080"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cputest [rom]",
		Short: "run a CP/M 8080 conformance ROM (TST8080.COM, CPUTEST.COM, 8080PRE.COM, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}

			cpu := i8080.New()
			cpu.LoadROM(rom, cputest.TPAOrigin)

			h := cputest.New(cpu, os.Stdout)
			n, err := h.Run()
			fmt.Fprintf(os.Stdout, "\n%d instructions executed\n", n)
			if err != nil {
				return fmt.Errorf("cpu stopped: %w", err)
			}
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
