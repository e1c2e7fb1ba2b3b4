// Package models defines the entities owned by the catalog store and the
// document shape it persists.
//
// The package contains two categories of types:
//
// 1. Entities: the collections the store is the source of truth for
//   - [Category] : named product grouping
//   - [Product] : catalog entry with price, flags and a soft category reference
//
// 2. Boundary types: values crossing into and out of the store
//   - [Snapshot] : the {categories, products} document written to durable storage
//   - [CategoryInput], [ProductInput] : upsert payloads where a missing ID means create
//
// Optional fields are pointers rather than empty strings so that "cleared"
// and "never set" stay distinguishable and omitted from the persisted JSON.
package models
