// Package triple decodes nested-triple tree descriptions
// carried in JSON or YAML documents.
//
// The shape is the same one tree.FromTuple accepts: a node is a
// sequence [key, left, right], and an empty tree is null.
//
//	[2, [1, null, null], null]
//
// builds
//
//	2
//	└─L─1
//
// Unlike decoding into an any and calling tree.FromTuple, keys are
// decoded straight into T, so a JSON number can become an int64 without
// going through float64 first, and a key can be any type the decoder
// knows how to fill in (structs, for example).
package triple
