// Package testsupport holds fixture and assertion helpers shared by the
// package tests: answers documents, generated file lookup and golden files.
package testsupport
