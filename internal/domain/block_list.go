package domain

import "sort"

// BlockList is an immutable set of blocked book IDs. Add and Remove return
// a new BlockList; the receiver is never modified.
type BlockList struct {
	ids map[string]struct{}
}

// NewBlockList creates an empty BlockList.
func NewBlockList() BlockList {
	return BlockList{ids: map[string]struct{}{}}
}

// NewBlockListFromIDs creates a BlockList containing the given book IDs.
// Duplicates collapse into a single entry. Used when rehydrating a profile
// from storage.
func NewBlockListFromIDs(bookIDs []string) BlockList {
	ids := make(map[string]struct{}, len(bookIDs))
	for _, id := range bookIDs {
		ids[id] = struct{}{}
	}
	return BlockList{ids: ids}
}

// Contains reports whether the given book ID is blocked.
func (b BlockList) Contains(bookID string) bool {
	_, ok := b.ids[bookID]
	return ok
}

// Add returns a new BlockList with the given book ID included.
func (b BlockList) Add(bookID string) BlockList {
	ids := make(map[string]struct{}, len(b.ids)+1)
	for id := range b.ids {
		ids[id] = struct{}{}
	}
	ids[bookID] = struct{}{}
	return BlockList{ids: ids}
}

// Remove returns a new BlockList with the given book ID excluded.
// Removing an absent ID yields an equivalent list.
func (b BlockList) Remove(bookID string) BlockList {
	ids := make(map[string]struct{}, len(b.ids))
	for id := range b.ids {
		if id != bookID {
			ids[id] = struct{}{}
		}
	}
	return BlockList{ids: ids}
}

// IDs returns the blocked book IDs sorted lexicographically.
func (b BlockList) IDs() []string {
	ids := make([]string, 0, len(b.ids))
	for id := range b.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of blocked book IDs.
func (b BlockList) Len() int {
	return len(b.ids)
}
