package patchwork

import "slices"

// SelectCluster picks the group to carve out of the cloud: the smallest group
// with at least [MinClusterSize] members. Fewer members means a sparser
// region, and carving sparse regions first keeps dense regions from
// fragmenting early. Among groups of equal size the one listed first wins.
//
// It returns the index of the chosen group in groups, or false if no group is
// large enough.
func SelectCluster(groups [][]int) (int, bool) {
	candidates := make([]int, 0, len(groups))
	for i, g := range groups {
		if len(g) >= MinClusterSize {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}
	slices.SortStableFunc(candidates, func(a, b int) int {
		return len(groups[a]) - len(groups[b])
	})
	return candidates[0], true
}
