package reconcile

// BuildPlan matches every incoming item against stored and decides, in order,
// whether it is inserted, replaces its stored counterpart, or is skipped.
// Items planned for insertion take part in matching for later incoming items,
// so duplicate keys in incoming behave as if each item had been applied in turn.
// stored is not modified.
func BuildPlan[T any](adapter Adapter[T], stored, incoming []T) *Plan[T] {
	index := make(map[string]T, len(stored)+len(incoming))
	for _, item := range stored {
		index[adapter.Key(item)] = item
	}

	plan := &Plan[T]{Actions: make([]Action[T], 0, len(incoming))}
	for _, item := range incoming {
		key := adapter.Key(item)
		plan.Summary.Total++

		current, found := index[key]
		if !found {
			index[key] = item
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionInsert, Key: key, Reason: "not stored", Item: item})
			plan.Summary.Added++
			continue
		}

		replace, reason := adapter.ShouldReplace(current, item)
		if replace {
			index[key] = item
			plan.Actions = append(plan.Actions, Action[T]{Type: ActionUpdate, Key: key, Reason: reason, Item: item})
			plan.Summary.Updated++
			continue
		}

		plan.Actions = append(plan.Actions, Action[T]{Type: ActionSkip, Key: key, Reason: reason})
		plan.Summary.Skipped++
	}

	return plan
}

// Apply executes plan against stored and returns the resulting collection.
// Inserts go to the front in plan order, so the last inserted item ends up
// first. Updates replace the matching item in place. stored is not modified.
func Apply[T any](adapter Adapter[T], plan *Plan[T], stored []T) []T {
	out := make([]T, len(stored), len(stored)+plan.Summary.Added)
	copy(out, stored)

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionInsert:
			out = append(out, action.Item)
			copy(out[1:], out[:len(out)-1])
			out[0] = action.Item
		case ActionUpdate:
			for i := range out {
				if adapter.Key(out[i]) == action.Key {
					out[i] = action.Item
					break
				}
			}
		}
	}

	return out
}
