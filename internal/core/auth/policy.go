package auth

import (
	"net/http"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

// Outcome is the terminal verdict of an access check. Checks short-circuit
// in a fixed order: credential, resource lookup, visibility, then
// role/ownership.
type Outcome int

const (
	Allowed Outcome = iota
	Unauthenticated
	NotFound
	Gone
	Forbidden
)

// HTTPStatus maps an outcome to the status code callers surface. A request
// that cannot be tied to a principal is always 401, never 403.
func (o Outcome) HTTPStatus() int {
	switch o {
	case Allowed:
		return http.StatusOK
	case Unauthenticated:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Gone:
		return http.StatusGone
	default:
		return http.StatusForbidden
	}
}

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case NotFound:
		return "not_found"
	case Gone:
		return "gone"
	default:
		return "forbidden"
	}
}

// ExerciseMeta is the ownership/visibility metadata the exercise rules
// decide on. Services fill it from the persisted record.
type ExerciseMeta struct {
	OwnerID  string
	IsPublic bool
	IsActive bool
}

// CanCreateExercise allows any authenticated user to create a private
// exercise; creating a public one requires ADMIN.
func CanCreateExercise(p domain.Principal, makePublic bool) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if makePublic && !p.Role.IsAdmin() {
		return Forbidden
	}
	return Allowed
}

// CanReadExercise gates single-exercise fetch: admins, owners and anyone
// for public exercises, with the soft-delete check taking precedence over
// the visibility check.
func CanReadExercise(p domain.Principal, found bool, ex ExerciseMeta) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if !found {
		return NotFound
	}
	if !ex.IsActive {
		return Gone
	}
	if p.Role.IsAdmin() || ex.IsPublic || ex.OwnerID == p.UserID {
		return Allowed
	}
	return Forbidden
}

// CanUpdateExercise allows admins to update any exercise and owners their
// own. Setting isPublic=true additionally requires ADMIN regardless of
// ownership.
func CanUpdateExercise(p domain.Principal, found bool, ex ExerciseMeta, makePublic bool) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if !found {
		return NotFound
	}
	if !p.Role.IsAdmin() && ex.OwnerID != p.UserID {
		return Forbidden
	}
	if makePublic && !p.Role.IsAdmin() {
		return Forbidden
	}
	return Allowed
}

// CanDeleteExercise allows admins to soft-delete any exercise and owners
// their own. Deleting an already-inactive exercise is permitted; the
// operation is idempotent.
func CanDeleteExercise(p domain.Principal, found bool, ex ExerciseMeta) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if !found {
		return NotFound
	}
	if !p.Role.IsAdmin() && ex.OwnerID != p.UserID {
		return Forbidden
	}
	return Allowed
}

// ExerciseVisibleInList reports whether an exercise appears in the list
// endpoint for the given principal. Inactive rows are filtered for every
// role, admins included; only single-fetch distinguishes Gone.
func ExerciseVisibleInList(p domain.Principal, ex ExerciseMeta) bool {
	if !ex.IsActive {
		return false
	}
	return p.Role.IsAdmin() || ex.IsPublic || ex.OwnerID == p.UserID
}

// CanAccessWorkout gates every workout and workout-exercise operation:
// strictly owner-only, with no admin override.
func CanAccessWorkout(p domain.Principal, found bool, ownerID string) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if !found {
		return NotFound
	}
	if ownerID != p.UserID {
		return Forbidden
	}
	return Allowed
}

// CanReadUser allows admins to fetch any user and users themselves.
func CanReadUser(p domain.Principal, targetID string) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if p.Role.IsAdmin() || p.UserID == targetID {
		return Allowed
	}
	return Forbidden
}

// CanAdministerUsers gates listUsers and deleteUserById: ADMIN only.
func CanAdministerUsers(p domain.Principal) Outcome {
	if p.IsZero() {
		return Unauthenticated
	}
	if !p.Role.IsAdmin() {
		return Forbidden
	}
	return Allowed
}
