// Package memfs implements a flat, fixed-capacity directory of named memory
// regions ("files") backed by page-granular allocations.
//
// A Table owns a small array of descriptor records which itself lives in
// memory obtained from the allocator, one record per slot. Creating a file
// claims the lowest vacant slot and a fresh page-rounded region; renaming
// rewrites only the name; deleting clears the slot and abandons the region.
// Abandoned memory is never handed back to the allocator (the allocator has
// no free operation), so no two region lifetimes ever share bytes. The pages
// are only counted, for diagnostics.
//
// Invariants after every operation:
//   - Names of in-use slots are unique.
//   - Alloc is Size rounded up to format.PageSize.
//   - In-use slots have non-zero addresses; vacant slots are all zero.
//   - The number of slots never changes.
//
// Names are compared byte-for-byte. Callers that want case-insensitive
// names normalize before calling, as the shell does.
//
// A Table is not safe for concurrent use.
package memfs
