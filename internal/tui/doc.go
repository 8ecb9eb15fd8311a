// Package tui is a terminal host for the dispatcher.
//
// It renders an in-memory document with all of its selections on a tcell
// screen and turns vi-style keystrokes into command requests:
//
//	w b W B e      word movements       h j k l   steps
//	0 $            line start and end   { } ( )   paragraphs and sentences
//	[ ]            sections             f F t T   find and till a letter
//	d y            delete and copy the following movement (dd deletes lines)
//	v              toggle select mode   C         add a cursor below the last
//	,              apply the next command to the last cursor only
//	ctrl-a ctrl-x  increment and decrement numbers
//	esc            collapse to the first cursor
//	q ctrl-c       quit
//
// A numeric prefix repeats the movement.
package tui
