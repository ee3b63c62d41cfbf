package production

// ComputeProgress returns the percentage (0..100, truncated) of tasks in
// termine. With excludeOutOfScope set, hors_scope tasks are removed from
// the denominator so a not-applicable step cannot hold progress below
// 100%. An empty task set, or a set that becomes empty after exclusion,
// yields 0 rather than an error.
func ComputeProgress(tasks []*Task, excludeOutOfScope bool) int {
	total := 0
	done := 0

	for _, t := range tasks {
		if excludeOutOfScope && !t.Status().InScope() {
			continue
		}
		total++
		if t.Status().IsTermine() {
			done++
		}
	}

	if total == 0 {
		return 0
	}
	return done * 100 / total
}
