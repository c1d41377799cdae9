package fountain

import "sort"

// GroupBySetup partitions blocks by setup letter. Two setups that share a
// letter but differ in description merge into one group; each block keeps
// its own description for display. Within a group, blocks are ordered by
// scene number ascending, preserving scan order among equal numbers.
func GroupBySetup(blocks []Block) map[string][]Block {
	groups := make(map[string][]Block)
	for _, b := range blocks {
		groups[b.Setup.Letter] = append(groups[b.Setup.Letter], b)
	}
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].SceneNumber < g[j].SceneNumber
		})
	}
	return groups
}
