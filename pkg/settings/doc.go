// Package settings describes adapter settings fields: the declarative schema
// (key, label, input kind, options) that the settings form compiler and the
// config typings template consume. Validate enforces the field contract ahead
// of compilation so downstream stages never need to handle malformed fields.
package settings
