package domain

import "path/filepath"

// SelectionEntry pairs a single source directory with the leaf names of the
// files chosen directly inside it. Entries are appended during traversal and
// never mutated afterwards.
type SelectionEntry struct {
	Dir   string
	Files []string
}

// SelectionSet is everything the user picked across the traversal, in the
// order the directories were visited.
type SelectionSet []SelectionEntry

// SourceFile is a flattened selection: the full local path and the leaf name.
type SourceFile struct {
	Path string
	Name string
}

// CollectFiles flattens the set into (path, name) pairs in selection order.
func (s SelectionSet) CollectFiles() []SourceFile {
	var files []SourceFile
	for _, entry := range s {
		for _, name := range entry.Files {
			files = append(files, SourceFile{
				Path: filepath.Join(entry.Dir, name),
				Name: name,
			})
		}
	}
	return files
}

// FileCount returns the number of files in the set.
func (s SelectionSet) FileCount() int {
	n := 0
	for _, entry := range s {
		n += len(entry.Files)
	}
	return n
}
