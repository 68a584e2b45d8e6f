// Package product contains the catalog side of the domain model: the
// products customers can order and the ingredients used to customize them.
// The catalog is read-only from the ordering core's perspective; entities
// here are looked up by identifier and never mutated by order operations.
package product
