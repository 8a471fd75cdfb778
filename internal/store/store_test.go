package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeevamp6/travel-planner/internal/domain"
	"github.com/jeevamp6/travel-planner/testutil"
)

// testUser is the minimal record shape the users collection indexes over.
type testUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func TestStore_AddGet_RoundTrip(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	in := testUser{ID: "u1", Email: "a@example.com", Name: "Asha"}
	require.NoError(t, st.Add(ctx, "users", in.ID, in))

	var out testUser
	require.NoError(t, st.Get(ctx, "users", "u1", &out))
	assert.Equal(t, in, out)
}

func TestStore_Add_DuplicateID(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	u := testUser{ID: "u1", Email: "a@example.com"}
	require.NoError(t, st.Add(ctx, "users", u.ID, u))

	u.Email = "other@example.com"
	err := st.Add(ctx, "users", u.ID, u)

	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestStore_Add_DuplicateUniqueIndex(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	require.NoError(t, st.Add(ctx, "users", "u1", testUser{ID: "u1", Email: "same@example.com"}))

	// Different primary key, same email; the unique email index rejects it.
	err := st.Add(ctx, "users", "u2", testUser{ID: "u2", Email: "same@example.com"})

	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestStore_Get_NotFound(t *testing.T) {
	st := testutil.NewStore(t)

	var out testUser
	err := st.Get(context.Background(), "users", "missing", &out)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Put_InsertsAndReplaces(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	// Put on an absent id inserts.
	require.NoError(t, st.Put(ctx, "users", "u1", testUser{ID: "u1", Email: "a@example.com", Name: "Asha"}))

	// Put on a present id replaces the whole document.
	require.NoError(t, st.Put(ctx, "users", "u1", testUser{ID: "u1", Email: "a@example.com", Name: "Renamed"}))

	var out testUser
	require.NoError(t, st.Get(ctx, "users", "u1", &out))
	assert.Equal(t, "Renamed", out.Name)
}

func TestStore_Put_UniqueIndexCollision(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	require.NoError(t, st.Add(ctx, "users", "u1", testUser{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, st.Add(ctx, "users", "u2", testUser{ID: "u2", Email: "b@example.com"}))

	// Stealing u1's email via an update must fail, not clobber.
	err := st.Put(ctx, "users", "u2", testUser{ID: "u2", Email: "a@example.com"})

	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestStore_Remove_Idempotent(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	require.NoError(t, st.Add(ctx, "users", "u1", testUser{ID: "u1", Email: "a@example.com"}))

	require.NoError(t, st.Remove(ctx, "users", "u1"))
	// Second remove of the same id is a no-op, not an error.
	require.NoError(t, st.Remove(ctx, "users", "u1"))

	var out testUser
	assert.ErrorIs(t, st.Get(ctx, "users", "u1", &out), domain.ErrNotFound)
}

func TestStore_GetByIndex_Matches(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	type stop struct {
		ID     string `json:"id"`
		TripID string `json:"tripId"`
		City   string `json:"city"`
	}
	require.NoError(t, st.Add(ctx, "stops", "s1", stop{ID: "s1", TripID: "t1", City: "Paris"}))
	require.NoError(t, st.Add(ctx, "stops", "s2", stop{ID: "s2", TripID: "t1", City: "Lyon"}))
	require.NoError(t, st.Add(ctx, "stops", "s3", stop{ID: "s3", TripID: "t2", City: "Rome"}))

	var got []stop
	require.NoError(t, st.GetByIndex(ctx, "stops", "tripId", "t1", &got))

	assert.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, "t1", s.TripID)
	}
}

func TestStore_GetByIndex_NoMatches(t *testing.T) {
	st := testutil.NewStore(t)

	var got []testUser
	require.NoError(t, st.GetByIndex(context.Background(), "users", "email", "nobody@example.com", &got))

	// Empty result decodes to an empty slice, never an error.
	assert.Empty(t, got)
}

func TestStore_GetByIndex_UnknownIndex(t *testing.T) {
	st := testutil.NewStore(t)

	var got []testUser
	err := st.GetByIndex(context.Background(), "users", "tripId", "t1", &got)

	assert.Error(t, err)
}

func TestStore_UnknownCollection(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	assert.Error(t, st.Add(ctx, "nope", "x", testUser{}))
	var out testUser
	assert.Error(t, st.Get(ctx, "nope", "x", &out))
	assert.Error(t, st.Remove(ctx, "nope", "x"))
}

func TestStore_All_Restartable(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	require.NoError(t, st.Add(ctx, "users", "u1", testUser{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, st.Add(ctx, "users", "u2", testUser{ID: "u2", Email: "b@example.com"}))

	seq := st.All(ctx, "users")

	count := func() int {
		n := 0
		for raw, err := range seq {
			require.NoError(t, err)
			var u testUser
			require.NoError(t, json.Unmarshal(raw, &u))
			n++
		}
		return n
	}

	// Ranging twice re-runs the query; both passes see every record.
	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}

func TestStore_All_StopsEarly(t *testing.T) {
	st := testutil.NewStore(t)
	ctx := context.Background()

	require.NoError(t, st.Add(ctx, "users", "u1", testUser{ID: "u1", Email: "a@example.com"}))
	require.NoError(t, st.Add(ctx, "users", "u2", testUser{ID: "u2", Email: "b@example.com"}))

	n := 0
	for _, err := range st.All(ctx, "users") {
		require.NoError(t, err)
		n++
		break
	}
	assert.Equal(t, 1, n)
}
