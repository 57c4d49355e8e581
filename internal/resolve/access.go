package resolve

import (
	"overload-resolver/internal/types"
)

// Accessible reports whether m may be invoked from caller.
func Accessible(u *types.Universe, m *types.MethodSignature, caller AccessContext) bool {
	switch m.Access {
	case types.AccessPublic:
		return true
	case types.AccessPrivate:
		return caller.Class != "" && types.Class(caller.Class) == types.Class(m.DeclaringType)
	case types.AccessPackage:
		return caller.PackageName() == types.PackageOf(m.DeclaringType)
	case types.AccessProtected:
		if caller.PackageName() == types.PackageOf(m.DeclaringType) {
			return true
		}

		return caller.Class != "" && u.IsSubclass(caller.Class, m.DeclaringType)
	default:
		return false
	}
}
