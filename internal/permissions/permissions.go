// Package permissions models the role editor's permission picker.
package permissions

import (
	"sort"

	"github.com/noah-isme/edu-admin-client/internal/models"
)

// GroupByModule groups perms by module. Modules appear in the order they are
// first seen and keep their permissions in catalogue order.
func GroupByModule(perms []models.Permission) []models.PermissionGroup {
	groups := make([]models.PermissionGroup, 0)
	index := make(map[string]int)
	for _, p := range perms {
		i, ok := index[p.Module]
		if !ok {
			i = len(groups)
			index[p.Module] = i
			groups = append(groups, models.PermissionGroup{Module: p.Module})
		}
		groups[i].Permissions = append(groups[i].Permissions, p)
	}
	return groups
}

// Selection is the set of keys ticked in the editor.
type Selection struct {
	catalogue []models.Permission
	selected  map[string]struct{}
}

// NewSelection starts a selection over catalogue with keys ticked. Keys
// missing from the catalogue are kept so an edit never drops them silently.
func NewSelection(catalogue []models.Permission, keys []string) *Selection {
	s := &Selection{catalogue: catalogue, selected: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.selected[k] = struct{}{}
	}
	return s
}

// Has reports whether key is ticked.
func (s *Selection) Has(key string) bool {
	_, ok := s.selected[key]
	return ok
}

// Toggle flips a single key.
func (s *Selection) Toggle(key string) {
	if s.Has(key) {
		delete(s.selected, key)
		return
	}
	s.selected[key] = struct{}{}
}

// ToggleModule selects every permission of module, or clears them all when
// the module is already fully selected.
func (s *Selection) ToggleModule(module string) {
	all := s.IsModuleSelected(module)
	for _, p := range s.catalogue {
		if p.Module != module {
			continue
		}
		if all {
			delete(s.selected, p.Key)
		} else {
			s.selected[p.Key] = struct{}{}
		}
	}
}

// IsModuleSelected reports whether every permission of module is ticked. A
// module with no permissions is never selected.
func (s *Selection) IsModuleSelected(module string) bool {
	seen := false
	for _, p := range s.catalogue {
		if p.Module != module {
			continue
		}
		seen = true
		if !s.Has(p.Key) {
			return false
		}
	}
	return seen
}

// Len returns the number of ticked keys.
func (s *Selection) Len() int { return len(s.selected) }

// Keys returns the ticked keys in catalogue order followed by any keys the
// catalogue does not know, sorted.
func (s *Selection) Keys() []string {
	keys := make([]string, 0, len(s.selected))
	known := make(map[string]struct{}, len(s.catalogue))
	for _, p := range s.catalogue {
		known[p.Key] = struct{}{}
		if s.Has(p.Key) {
			keys = append(keys, p.Key)
		}
	}
	var unknown []string
	for k := range s.selected {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return append(keys, unknown...)
}
