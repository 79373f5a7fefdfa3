// Package graph holds records that refer to each other, and a generic record, for the
// generated codec in graph_shapejson.go.
package graph

//go:generate go run ../../shapejsonc --config shapejson.yaml

// Node is a tree node. Nothing stops a Node from pointing back at an ancestor.
type Node struct {
	Name     string
	Next     *Node
	Children []*Node
}

// A and B point at each other.
type A struct {
	Name string
	B    *B
}

type B struct {
	Name string
	A    *A
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	Total int
}

type Item struct {
	Sku string
}
