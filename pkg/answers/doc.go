// Package answers holds the typed answer set that drives a scaffolding run.
// Every recognized question is an optional field; absent answers resolve
// through Default so generation code never has to special-case missing
// input. Answers are read-only once constructed: accessors hand out copies.
package answers
