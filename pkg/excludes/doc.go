// Package excludes implements the exclusion-filter algebra used during
// dependency resolution.
//
// A Filter decides whether a module or artifact coordinate survives the
// exclude rules attached to a dependency edge. Filters are immutable
// values: Union and Intersect always return new filters, so a filter
// built for one edge can be shared freely across concurrent resolution
// workers. ExcludesSameModulesAs provides the semantic equivalence test
// that makes per-node filter caching sound.
package excludes
