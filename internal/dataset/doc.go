// Package dataset loads the sample relational dataset that translated
// queries run against.
//
// A dataset is declared in CUE: a "tables" struct whose fields are table
// names, each with an ordered column list and seed rows. The built-in
// sample (users and orders) is embedded; Load reads a user-supplied file
// with the same shape.
//
//	tables: users: {
//		columns: [{name: "id", type: "INTEGER", primary_key: true}, ...]
//		rows: [[1, "John Doe", ...], ...]
//	}
//
// Every file is unified with an embedded schema before decoding, so column
// types, identifier shapes and unknown fields are rejected with a source
// position. Row width and per-cell types are checked after decoding.
package dataset
