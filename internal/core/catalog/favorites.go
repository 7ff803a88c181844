package catalog

// FavoriteSet tracks the listing ids a user has hearted
type FavoriteSet map[string]struct{}

// Has reports whether id is in the set
func (s FavoriteSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the member ids in unspecified order
func (s FavoriteSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// ToggleFavorite returns a new set with id added if absent or removed if
// present; the input set is never mutated
func ToggleFavorite(s FavoriteSet, id string) FavoriteSet {
	out := make(FavoriteSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	if _, ok := out[id]; ok {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}
