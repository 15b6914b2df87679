// Package repl runs the interactive session: it asks for a number, prints
// its English words, and asks whether to continue, until the user answers
// "n" or input runs out.
package repl
