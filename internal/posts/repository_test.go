package posts

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circleup-app/circleup-backend/internal/common/database"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Skip if no database connection
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("Skipping test - no database connection configured")
	}

	db, err := database.NewPostgresDB(os.Getenv("DATABASE_URL"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}

func seedUser(t *testing.T, db *sqlx.DB, name string) int64 {
	t.Helper()

	username := fmt.Sprintf("%s%d", name, time.Now().UnixNano())
	var id int64
	err := db.QueryRow(
		`INSERT INTO users (username, name, email, password)
		 VALUES ($1, $2, $3, 'not-a-real-hash')
		 RETURNING id`,
		username, name, username+"@example.com").Scan(&id)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Exec(`DELETE FROM likes WHERE user_id = $1
			OR post_id IN (SELECT id FROM posts WHERE user_id = $1)`, id)
		db.Exec(`DELETE FROM comments WHERE user_id = $1
			OR post_id IN (SELECT id FROM posts WHERE user_id = $1)`, id)
		db.Exec(`DELETE FROM posts WHERE user_id = $1`, id)
		db.Exec(`DELETE FROM stories WHERE user_id = $1`, id)
		db.Exec(`DELETE FROM relationships
			WHERE follower_user_id = $1 OR followed_user_id = $1`, id)
		db.Exec(`DELETE FROM users WHERE id = $1`, id)
	})

	return id
}

func seedFollow(t *testing.T, db *sqlx.DB, followerID, followedID int64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO relationships (follower_user_id, followed_user_id) VALUES ($1, $2)`,
		followerID, followedID)
	require.NoError(t, err)
}

func seedPost(t *testing.T, db *sqlx.DB, userID int64, desc string, age time.Duration) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(
		`INSERT INTO posts (user_id, descr, created_at) VALUES ($1, $2, $3) RETURNING id`,
		userID, desc, time.Now().Add(-age)).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostgresRepository_GetFeed_Visibility(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	seedFollow(t, db, alice, bob)

	ownPost := seedPost(t, db, alice, "from alice", 3*time.Minute)
	followedPost := seedPost(t, db, bob, "from bob", 2*time.Minute)
	seedPost(t, db, carol, "from carol", 1*time.Minute)

	feed, total, err := repo.GetFeed(ctx, alice, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, feed, 2)

	// Own and followed posts only, newest first; carol is never visible
	assert.Equal(t, followedPost, feed[0].ID)
	assert.Equal(t, ownPost, feed[1].ID)
}

func TestPostgresRepository_GetFeed_NoFollowsNoPosts(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresRepository(db)

	loner := seedUser(t, db, "loner")

	feed, total, err := repo.GetFeed(context.Background(), loner, 10, 0)

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, feed)
}

func TestPostgresRepository_GetFeed_UnfollowedAuthorExcluded(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	seedPost(t, db, bob, "invisible to alice", time.Minute)

	feed, total, err := repo.GetFeed(ctx, alice, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, feed)

	// The same post becomes visible once the edge exists
	seedFollow(t, db, alice, bob)

	feed, total, err = repo.GetFeed(ctx, alice, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, feed, 1)
	assert.Equal(t, bob, feed[0].UserID)
}
