package auth

import (
	"net/http"
	"testing"

	"github.com/fitlogapp/fitlog-api/internal/core/domain"
)

var (
	anon  = domain.Principal{}
	alice = domain.Principal{UserID: "alice", Email: "alice@example.com", Role: domain.RoleUser}
	bob   = domain.Principal{UserID: "bob", Email: "bob@example.com", Role: domain.RoleUser}
	admin = domain.Principal{UserID: "root", Email: "admin@example.com", Role: domain.RoleAdmin}
)

func TestOutcome_HTTPStatus(t *testing.T) {
	cases := map[Outcome]int{
		Allowed:         http.StatusOK,
		Unauthenticated: http.StatusUnauthorized,
		NotFound:        http.StatusNotFound,
		Gone:            http.StatusGone,
		Forbidden:       http.StatusForbidden,
	}
	for o, want := range cases {
		if got := o.HTTPStatus(); got != want {
			t.Fatalf("%s: expected %d, got %d", o, want, got)
		}
	}
}

func TestCanCreateExercise(t *testing.T) {
	if o := CanCreateExercise(anon, false); o != Unauthenticated {
		t.Fatalf("anon create: %s", o)
	}
	if o := CanCreateExercise(alice, false); o != Allowed {
		t.Fatalf("user private create: %s", o)
	}
	if o := CanCreateExercise(alice, true); o != Forbidden {
		t.Fatalf("user public create must be forbidden: %s", o)
	}
	if o := CanCreateExercise(admin, true); o != Allowed {
		t.Fatalf("admin public create: %s", o)
	}
}

func TestCanReadExercise(t *testing.T) {
	private := ExerciseMeta{OwnerID: "alice", IsPublic: false, IsActive: true}
	public := ExerciseMeta{OwnerID: "alice", IsPublic: true, IsActive: true}

	if o := CanReadExercise(anon, true, private); o != Unauthenticated {
		t.Fatalf("anon read: %s", o)
	}
	if o := CanReadExercise(alice, false, ExerciseMeta{}); o != NotFound {
		t.Fatalf("missing exercise: %s", o)
	}
	if o := CanReadExercise(alice, true, private); o != Allowed {
		t.Fatalf("owner read: %s", o)
	}
	if o := CanReadExercise(bob, true, private); o != Forbidden {
		t.Fatalf("stranger on private: %s", o)
	}
	if o := CanReadExercise(bob, true, public); o != Allowed {
		t.Fatalf("stranger on public: %s", o)
	}
	if o := CanReadExercise(admin, true, private); o != Allowed {
		t.Fatalf("admin override on read: %s", o)
	}
}

func TestCanReadExercise_GoneBeforeOwnership(t *testing.T) {
	deleted := ExerciseMeta{OwnerID: "alice", IsPublic: false, IsActive: false}

	// The soft-delete check fires before visibility, for every role.
	if o := CanReadExercise(bob, true, deleted); o != Gone {
		t.Fatalf("stranger on deleted: expected gone, got %s", o)
	}
	if o := CanReadExercise(alice, true, deleted); o != Gone {
		t.Fatalf("owner on deleted: expected gone, got %s", o)
	}
	if o := CanReadExercise(admin, true, deleted); o != Gone {
		t.Fatalf("admin on deleted: expected gone, got %s", o)
	}
}

func TestCanUpdateExercise(t *testing.T) {
	mine := ExerciseMeta{OwnerID: "alice", IsActive: true}

	if o := CanUpdateExercise(anon, true, mine, false); o != Unauthenticated {
		t.Fatalf("anon update: %s", o)
	}
	if o := CanUpdateExercise(alice, false, ExerciseMeta{}, false); o != NotFound {
		t.Fatalf("missing update: %s", o)
	}
	if o := CanUpdateExercise(alice, true, mine, false); o != Allowed {
		t.Fatalf("owner update: %s", o)
	}
	if o := CanUpdateExercise(bob, true, mine, false); o != Forbidden {
		t.Fatalf("stranger update: %s", o)
	}
	if o := CanUpdateExercise(admin, true, mine, false); o != Allowed {
		t.Fatalf("admin update: %s", o)
	}
	// Publishing stays admin-only even for the owner.
	if o := CanUpdateExercise(alice, true, mine, true); o != Forbidden {
		t.Fatalf("owner publish must be forbidden: %s", o)
	}
	if o := CanUpdateExercise(admin, true, mine, true); o != Allowed {
		t.Fatalf("admin publish: %s", o)
	}
}

func TestCanDeleteExercise(t *testing.T) {
	mine := ExerciseMeta{OwnerID: "alice", IsActive: true}
	alreadyGone := ExerciseMeta{OwnerID: "alice", IsActive: false}

	if o := CanDeleteExercise(alice, true, mine); o != Allowed {
		t.Fatalf("owner delete: %s", o)
	}
	if o := CanDeleteExercise(bob, true, mine); o != Forbidden {
		t.Fatalf("stranger delete: %s", o)
	}
	if o := CanDeleteExercise(admin, true, mine); o != Allowed {
		t.Fatalf("admin delete: %s", o)
	}
	// Re-deleting an inactive exercise is a no-op, not an error.
	if o := CanDeleteExercise(alice, true, alreadyGone); o != Allowed {
		t.Fatalf("idempotent delete: %s", o)
	}
}

func TestExerciseVisibleInList(t *testing.T) {
	private := ExerciseMeta{OwnerID: "alice", IsPublic: false, IsActive: true}
	public := ExerciseMeta{OwnerID: "alice", IsPublic: true, IsActive: true}
	deleted := ExerciseMeta{OwnerID: "alice", IsPublic: true, IsActive: false}

	if !ExerciseVisibleInList(alice, private) {
		t.Fatalf("owner must see own private exercise")
	}
	if ExerciseVisibleInList(bob, private) {
		t.Fatalf("stranger must not see private exercise")
	}
	if !ExerciseVisibleInList(bob, public) {
		t.Fatalf("public exercise visible to all")
	}
	if !ExerciseVisibleInList(admin, private) {
		t.Fatalf("admin sees everything active")
	}
	// Inactive rows are hidden from the list for every role.
	if ExerciseVisibleInList(admin, deleted) {
		t.Fatalf("inactive exercise must be filtered for admins too")
	}
	if ExerciseVisibleInList(alice, deleted) {
		t.Fatalf("inactive exercise must be filtered for the owner")
	}
}

func TestCanAccessWorkout(t *testing.T) {
	if o := CanAccessWorkout(anon, true, "alice"); o != Unauthenticated {
		t.Fatalf("anon workout: %s", o)
	}
	if o := CanAccessWorkout(alice, false, ""); o != NotFound {
		t.Fatalf("missing workout: %s", o)
	}
	if o := CanAccessWorkout(alice, true, "alice"); o != Allowed {
		t.Fatalf("owner workout: %s", o)
	}
	if o := CanAccessWorkout(bob, true, "alice"); o != Forbidden {
		t.Fatalf("stranger workout: %s", o)
	}
	// Workouts have no admin override.
	if o := CanAccessWorkout(admin, true, "alice"); o != Forbidden {
		t.Fatalf("admin must not access foreign workouts: %s", o)
	}
}

func TestCanReadUser(t *testing.T) {
	if o := CanReadUser(anon, "alice"); o != Unauthenticated {
		t.Fatalf("anon read user: %s", o)
	}
	if o := CanReadUser(alice, "alice"); o != Allowed {
		t.Fatalf("self read: %s", o)
	}
	if o := CanReadUser(alice, "bob"); o != Forbidden {
		t.Fatalf("foreign read: %s", o)
	}
	if o := CanReadUser(admin, "alice"); o != Allowed {
		t.Fatalf("admin read: %s", o)
	}
}

func TestCanAdministerUsers(t *testing.T) {
	if o := CanAdministerUsers(anon); o != Unauthenticated {
		t.Fatalf("anon admin: %s", o)
	}
	if o := CanAdministerUsers(alice); o != Forbidden {
		t.Fatalf("user admin: %s", o)
	}
	if o := CanAdministerUsers(admin); o != Allowed {
		t.Fatalf("admin admin: %s", o)
	}
}
