// Package commands wires the adaptergen cobra command tree.
package commands
