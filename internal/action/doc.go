// Package action implements editing actions built on the navigation layer.
//
// NumberAction finds the first integer literal at or after each cursor on its
// line and rewrites it offset by a fixed delta. A '-' directly before a word is
// read as the number's sign. Words that are not clean literals are skipped; a
// line with no literal leaves its cursor where it was.
package action
