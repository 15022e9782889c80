// Package vfs implements the in-memory virtual filesystem a shell session
// navigates.
//
// A Tree has a single root Directory named "/". Nodes are either a
// *Directory or a *File; the Node interface is sealed so the two variants are
// handled with a type switch and a File can never be asked for children.
//
// Trees are immutable once built. Path resolution (Tree.Resolve) maps a path
// string plus a current-directory cursor to a node:
//
//	tree := vfs.NewTree(vfs.NewDirectory("/",
//	    vfs.NewDirectory("docs", vfs.NewTextFile("readme.txt", "hi")),
//	))
//	n, abs, err := tree.Resolve("readme.txt", "/docs")
//	// n is the *File, abs is "/docs/readme.txt"
package vfs
