package common

import "path"

// PkgAlias returns the name generated code refers to an imported package by:
// the last element of its import path. An empty path has no alias.
func PkgAlias(importPath string) string {
	if importPath == "" {
		return ""
	}

	return path.Base(importPath)
}
