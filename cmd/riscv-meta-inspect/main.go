// Program riscv-meta-inspect is a small demonstration caller of the
// riscv-isa-meta model: it loads a metadata directory and renders either
// an extension→opcode tree or a structural dump of every opcode sharing
// a mnemonic. The
// core model package never imports a CLI framework; this program is the
// one caller this repository ships.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apparentlymart/riscv-isa-meta/cmd/riscv-meta-inspect/internal/render"
	"github.com/apparentlymart/riscv-isa-meta/internal/logging"
	"github.com/apparentlymart/riscv-isa-meta/model"
)

func main() {
	if err := newRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	var dir string
	var verbose bool

	root := &cobra.Command{
		Use:   "riscv-meta-inspect",
		Short: "Inspect a RISC-V metadata directory loaded by riscv-isa-meta/model.",
	}
	root.PersistentFlags().StringVar(&dir, "dir", ".", "metadata directory to load")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug-level parser warnings")

	root.AddCommand(treeCommand(&dir, &verbose))
	root.AddCommand(showCommand(&dir, &verbose))

	return root
}

func loadModel(dir string, verbose bool) (*model.Model, error) {
	var log *logging.Logger
	if verbose {
		log = logging.New(os.Stderr, true)
	}
	return model.Load(dir, log)
}

func treeCommand(dir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Display the extension to opcode tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(*dir, *verbose)
			if err != nil {
				return err
			}
			fmt.Println(render.ExtensionTree(m))
			return nil
		},
	}
}

func showCommand(dir *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "show <mnemonic>",
		Short: "Dump every opcode record sharing the given mnemonic.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModel(*dir, *verbose)
			if err != nil {
				return err
			}
			opcodes := m.LookupOpcodeByName(args[0])
			if len(opcodes) == 0 {
				return fmt.Errorf("no opcode named %q", args[0])
			}
			for _, op := range opcodes {
				model.Dump(os.Stdout, op)
			}
			return nil
		},
	}
}
