package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/events"
)

var conjunctionOpposition bool

var conjunctionCmd = &cobra.Command{
	Use:   "conjunction <planet>",
	Short: "Next solar conjunction (or opposition) of a planet",
	Args:  cobra.ExactArgs(1),
	RunE:  runConjunction,
}

func init() {
	conjunctionCmd.Flags().BoolVar(&conjunctionOpposition, "opposition", false, "search for opposition instead")
	rootCmd.AddCommand(conjunctionCmd)
}

func runConjunction(cmd *cobra.Command, args []string) error {
	b, err := body.Parse(args[0])
	if err != nil {
		return err
	}
	t, err := startTime()
	if err != nil {
		return err
	}
	p := provider()

	target, label := 0.0, "conjunction"
	if conjunctionOpposition {
		target, label = 180.0, "opposition"
	}
	when, found, err := events.SearchRelativeLongitude(p, b, target, t, tolerance)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("No %s of %s found after %s\n", label, b, t)
		return nil
	}
	fmt.Printf("Next %s of %s: %s\n", label, b, when)
	return nil
}
