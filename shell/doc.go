// Package shell is the line-oriented command interpreter in front of a
// memfs.Table.
//
// Each input line is upper-cased into a fresh string, split into at most
// three tokens and dispatched:
//
//	LIST
//	CREATE <name> <size>
//	RENAME <old> <new>
//	DEL <name>
//	PAGE   allocation probe, does not touch the table
//	MEM    allocator and table usage
//	END    halts the interpreter
//
// Every line produces its response followed by the "> " prompt, except END
// which prints a farewell and leaves the shell halted. Responses are the
// error report: "OK", "usage: ...", "ERR: <reason>" or "Unknown command".
//
// A Shell is not safe for concurrent use. Commands run to completion one at
// a time.
package shell
