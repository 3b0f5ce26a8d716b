// Package render builds human-readable views of a loaded model.Model for
// the riscv-meta-inspect command.
package render

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/apparentlymart/riscv-isa-meta/model"
)

// ExtensionTree renders every extension as a branch of a tree, with each
// extension's opcodes as leaves underneath it, in load order.
func ExtensionTree(m *model.Model) string {
	tree := treeprint.New()
	tree.SetValue("isa")
	for _, ext := range m.Extensions {
		branch := tree.AddMetaBranch(ext.ISA(), ext.Description)
		for _, op := range ext.Opcodes {
			branch.AddNode(fmt.Sprintf("%s (%s)", op.Name, op.Key))
		}
	}
	return tree.String()
}
