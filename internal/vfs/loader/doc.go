// Package loader builds a vfs.Tree from a serialized description.
//
// The description is a nested record:
//
//	{"type": "dir", "name": "/", "children": {
//	    "notes.txt": {"type": "file", "name": "notes.txt", "content": "aGk="}
//	}}
//
// JSON and YAML are both accepted; JSON is parsed as YAML flow syntax.
// File content is base64 and stays encoded until a file is read.
//
// The loader never fails its caller: Load falls back to the built-in default
// tree when no source is named, and to an empty root (with a logged
// diagnostic) when a named source is missing, unreadable or malformed.
// LoadStrict exposes the underlying error for callers that need it.
package loader
