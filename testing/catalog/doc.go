// Package catalog is generated entirely from catalog.shape, types included.
package catalog

//go:generate go run ../../shapejsonc --config shapejson.jsonc
