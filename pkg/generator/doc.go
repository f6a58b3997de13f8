// Package generator turns service descriptions into Go source.
//
// A run loads each configured description, applies its override patch,
// builds member declarations for the schemas and resources, and renders
// them through a single file template. Output is gofmt-formatted and every
// run writes a manifest correlating the generated files with the input
// document hashes, the run identifier, and the producing toolchain.
package generator
