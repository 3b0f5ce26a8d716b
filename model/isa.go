package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeISAExtensions expands a compact ISA string such as "rv64imafd"
// into its ordered extension list. It finds the longest matching
// registered prefix and immediately-following width, replaces the first
// "g" in the remaining suffix with "imafd", then resolves each letter
// against the registered extensions. Unknown prefix/width, an unknown
// extension letter, or a duplicate extension are all fatal.
func (m *Model) DecodeISAExtensions(isaSpec string) []*Extension {
	if len(isaSpec) == 0 {
		return nil
	}

	isaSpec = strings.ToLower(isaSpec)

	var extPrefix string
	var extWidth int
	var extWidthStr string
	for _, ext := range m.Extensions {
		if strings.HasPrefix(isaSpec, ext.Prefix) && len(ext.Prefix) > len(extPrefix) {
			extPrefix = ext.Prefix
		}
		if extPrefix != "" {
			widthStr := ext.Width
			if strings.HasPrefix(isaSpec[len(extPrefix):], widthStr) {
				extWidthStr = widthStr
				extWidth, _ = strconv.Atoi(widthStr)
			}
		}
	}
	if extPrefix == "" || extWidth == 0 {
		panic(fmt.Sprintf("illegal isa spec: %s", isaSpec))
	}

	extOffset := len(extPrefix) + len(extWidthStr)
	if g := strings.IndexByte(isaSpec[extOffset:], 'g'); g >= 0 {
		g += extOffset
		isaSpec = isaSpec[:g] + "imafd" + isaSpec[g+1:]
	}

	var list []*Extension
	seen := make(map[string]bool)
	for i := extOffset; i < len(isaSpec); i++ {
		extName := isaSpec[:extOffset] + string(isaSpec[i])
		ext, ok := m.ExtensionsByName[extName]
		if !ok {
			panic(fmt.Sprintf("illegal isa spec: %s: missing extension: %s", isaSpec, extName))
		}
		if seen[extName] {
			panic(fmt.Sprintf("illegal isa spec: %s: duplicate extension: %s", isaSpec, extName))
		}
		seen[extName] = true
		list = append(list, ext)
	}
	return list
}
