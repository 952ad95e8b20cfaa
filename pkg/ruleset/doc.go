// Package ruleset compiles declarative YAML rule documents into validators.
//
// A Document lists fields and their rule descriptors; a Schema maps each field
// name to a typed Binding that knows how to read the value from the record and
// which rule kinds make sense for it. Compile wires both together through
// validator.Builder, so every registration check of the engine still applies.
package ruleset
