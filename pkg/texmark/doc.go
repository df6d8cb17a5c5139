// Package texmark implements an incremental, resumable tokenizer for LaTeX
// source. It follows the same contract CodeMirror-style editor modes use:
// StartState produces an initial state, Token consumes one token at a time
// from a single line, and BlankLine advances state across an empty line.
// A host editor drives it line by line and may persist the State returned
// after any line to resume tokenization there later, without retokenizing
// anything before it.
package texmark
