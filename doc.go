package objectutil

// Package objectutil provides:
//
// - A closed Kind taxonomy for loosely-structured values (Classify)
// - Emptiness checks per kind (IsEmpty) and canonical empty values (EmptyValue)
// - Kind-aware copying with intentionally non-uniform depth (Clone)
// - Structural comparison with top-level field exclusion (IsSameObject)
// - Dotted-path lookups into nested mappings (ValueFromObject)
//
// Host model:
// - nil is the host "null" and classifies as KindMapping; Undefined is the host "undefined".
// - Slices and arrays are sequences; *sequencedmap.Map[string, any] is the keyed mapping;
//   time.Time is temporal; values implementing Element are interactive.
// - Every function is synchronous and holds no shared mutable state except the
//   JSON driver registry, which is guarded.
//
// Typical usage:
//
//  if objectutil.IsEmpty(v) { ... }
//  cp, err := objectutil.Clone(doc)
//  same := objectutil.IsSameObject(a, b, "updatedAt")
//  name := objectutil.ValueFromObject(doc, "name.given.full")
//
// Clone depth differs per kind and is part of the contract:
//
//  - Temporal: a new value carrying the same instant.
//  - KeyedMapping: a new map with the same entries; entry values are shared.
//  - Sequence: a lossy JSON round-trip through the configured JSONDriver.
//  - Mapping: a new container of the same type; nested values are shared.
