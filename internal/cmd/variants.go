package cmd

import (
	"fmt"
	"io"

	"github.com/Iron-Ham/bridge/internal/abstraction"
	"github.com/Iron-Ham/bridge/internal/implementor"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	nameStyle   = lipgloss.NewStyle().Width(12)
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List available implementors and abstraction kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVariants(cmd.OutOrStdout(), implementor.DefaultRegistry())
		},
	}
}

func printVariants(w io.Writer, reg *implementor.Registry) error {
	fmt.Fprintln(w, headerStyle.Render("Implementors"))
	for _, name := range reg.Names() {
		impl, err := reg.New(name, io.Discard)
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%T", impl)
		if l, ok := impl.(implementor.Labeler); ok {
			label = l.Label()
		}
		fmt.Fprintf(w, "  %s%s\n", nameStyle.Render(name), label)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Abstractions"))
	for _, kind := range abstraction.ValidKinds() {
		fmt.Fprintf(w, "  %s\n", kind)
	}
	return nil
}
