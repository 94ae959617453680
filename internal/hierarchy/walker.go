package hierarchy

import (
	"strings"
)

// visitFunc receives the folder name and its full "/"-joined path.
type visitFunc func(name, path string)

// walk visits every folder depth-first, in insertion order.
func walk(b *Branch, parent string, visit visitFunc) {
	if b == nil {
		return
	}
	for _, e := range b.Entries {
		path := e.Name
		if parent != "" {
			path = parent + "/" + e.Name
		}

		visit(e.Name, path)

		// Leaves stop the descent; a folder may match and still have
		// matching descendants.
		walk(asBranch(e.Node), path, visit)
	}
}

// FindPathsForCategory returns the full path of every folder whose name
// contains category, case-insensitively. A nil tree yields an empty slice.
func FindPathsForCategory(tree *Branch, category string) []string {
	paths := []string{}
	needle := strings.ToLower(category)

	walk(tree, "", func(name, path string) {
		if strings.Contains(strings.ToLower(name), needle) {
			paths = append(paths, path)
		}
	})

	return paths
}

// FlattenToPaths returns the full path of every folder in the tree.
func FlattenToPaths(tree *Branch) []string {
	paths := []string{}
	walk(tree, "", func(_, path string) {
		paths = append(paths, path)
	})
	return paths
}

// Search filters paths on a case-insensitive substring. An empty term
// returns no paths.
func Search(paths []string, term string) []string {
	found := []string{}
	if term == "" {
		return found
	}

	needle := strings.ToLower(term)
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p), needle) {
			found = append(found, p)
		}
	}
	return found
}

// SubTree returns the folders below path. The second value is false when the
// path does not exist; a leaf yields an empty branch.
func SubTree(tree *Branch, path string) (*Branch, bool) {
	if tree == nil {
		return nil, false
	}
	if path == "" {
		return tree, true
	}

	current := tree
	for _, segment := range strings.Split(path, "/") {
		node, ok := current.Child(segment)
		if !ok {
			return nil, false
		}
		current = asBranch(node)
		if current == nil {
			current = &Branch{}
		}
	}
	return current, true
}

// Contains reports whether path names an existing folder.
func Contains(tree *Branch, path string) bool {
	if path == "" {
		return false
	}
	_, ok := SubTree(tree, path)
	return ok
}
