// Package authz decides whether a caller may view or edit module data.
//
// The edit rule is evaluated in order and the first match wins:
// superuser, administrator role, explicit EDIT permission on the module,
// and finally ownership of the resource (creator or last updater).
package authz

import "codecamp/internal/domain"

// CanEditModule reports whether the caller may edit anything in moduleID
// without looking at a specific resource.
func CanEditModule(caller domain.Caller, moduleID int) bool {
	for _, c := range caller.Capabilities {
		switch c := c.(type) {
		case domain.Superuser, domain.AdminRole:
			return true
		case domain.ModulePermission:
			if c.ModuleID == moduleID && c.Action == domain.ActionEdit {
				return true
			}
		}
	}
	return false
}

// CanEdit applies the full rule. audit may be nil when the resource does not exist,
// in which case only the module-level tiers can allow.
func CanEdit(caller domain.Caller, moduleID int, audit *domain.Audit) bool {
	if CanEditModule(caller, moduleID) {
		return true
	}
	return audit.IsOwnedBy(caller.UserID)
}

// CanView reports whether the caller may read module-scoped data. Edit implies view.
func CanView(caller domain.Caller, moduleID int) bool {
	if CanEditModule(caller, moduleID) {
		return true
	}
	for _, c := range caller.Capabilities {
		if p, ok := c.(domain.ModulePermission); ok && p.ModuleID == moduleID && p.Action == domain.ActionView {
			return true
		}
	}
	return false
}
