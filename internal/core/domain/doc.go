// Package domain defines the core business entities for Shopfeed.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ShopDocument: The decoded merchandising document from the shop endpoint
//   - Section: A resolved, renderable section of the home feed (closed variant set)
//   - ShopItem / Category / Banner: Resolved entities referenced by sections
//   - RecentSearch: A persisted recent-search record
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
