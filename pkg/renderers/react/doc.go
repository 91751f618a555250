// Package react renders compiled settings controls (see pkg/form) as JSX
// expressions for the generated React settings component.
package react
