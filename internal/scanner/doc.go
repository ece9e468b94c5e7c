// Package scanner finds activity documents under the content root and
// extracts the image references they contain.
//
// Two extraction modes exist:
//   - MarkdownImages yields `![alt](path "title")` occurrences in text order
//   - InboxPaths yields every distinct path under the inbox web prefix,
//     whatever syntax surrounds it
//
// References are positional and must be taken from the text before any
// rewrite is applied to it.
package scanner
