// Package protocol converts command requests and results to and from JSON.
//
// A request is an object with a "command" name and the fields that command
// needs:
//
//	{"command": "cursor", "cursors": [0, -1],
//	 "action": {"command": "move", "movement": {"type": "word", "count": 2}}}
//
// Decoding is strict about names and lenient about absent fields: an unknown
// command or movement type is rejected, a missing movement count means 1.
package protocol
