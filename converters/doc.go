// Package converters moves graphs in and out of core.Graph:
//
//   - the line-oriented text format "source target weight" (ParseText,
//     MergeText, FormatText);
//   - the JSON document used by the editor and the HTTP API (ReadJSON,
//     WriteJSON).
//
// Text graphs are always undirected. Parsing never stops at the first bad
// line; every problem is reported as a ValidationError carrying its
// 1-based line number, and well-formed lines are still collected.
package converters
