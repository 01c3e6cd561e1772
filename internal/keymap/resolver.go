package keymap

// Resolver maps key strings to actions for a stack of contexts. A key bound
// in an earlier context shadows the same key in a later one, so "k" can mean
// expand in a sheet and move up in the list beneath it.
type Resolver struct {
	layers   []map[string]Action // one per context, highest priority first
	byAction map[Action][]string // for help text
}

// NewResolver builds a resolver over bindings. contexts lists the contexts to
// include, highest priority first; with none, every binding goes into a
// single layer where the first binding of a key wins.
func NewResolver(bindings []Binding, contexts ...string) *Resolver {
	r := &Resolver{byAction: make(map[Action][]string)}

	if len(contexts) == 0 {
		r.layers = []map[string]Action{r.layer(bindings)}
		return r
	}
	for _, ctx := range contexts {
		var inCtx []Binding
		for _, b := range bindings {
			if b.Context == ctx {
				inCtx = append(inCtx, b)
			}
		}
		r.layers = append(r.layers, r.layer(inCtx))
	}
	return r
}

// ForContext builds a resolver from the bindings of a single context.
func ForContext(context string) *Resolver {
	return NewResolver(All, context)
}

func (r *Resolver) layer(bindings []Binding) map[string]Action {
	keys := make(map[string]Action)
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, taken := keys[key]; !taken {
				keys[key] = b.Action
			}
			if !contains(r.byAction[b.Action], key) {
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return keys
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	for _, l := range r.layers {
		if a, ok := l[key]; ok {
			return a
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
