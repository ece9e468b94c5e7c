// Package mdx holds the text-level rules for .mdx documents: front-matter
// lookup, the figure component import declaration, and rendering of the
// self-closing figure tag that replaces Markdown image syntax.
//
// Everything here is pure string manipulation; no function touches the
// filesystem.
package mdx
