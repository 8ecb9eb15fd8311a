// Package script drives the dispatcher from command scripts.
//
// Two script forms are supported. A YAML script is a list of requests in the
// same shape as the JSON protocol:
//
//	name: delete two words
//	steps:
//	  - command: delete
//	    movement: {type: word, count: 2}
//
// A Lua script runs in a sandboxed gopher-lua state with a global "motion"
// table whose functions execute commands against the host:
//
//	motion.move{type = "word", count = 2}
//	motion.cursor({0, -1}, {command = "increment"})
//	local sels = motion.selections()
package script
