// internal/common/database/migrations.go
// Idempotent schema setup executed at startup

package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGSERIAL PRIMARY KEY,
		username    VARCHAR(50) NOT NULL UNIQUE,
		name        VARCHAR(100) NOT NULL,
		email       VARCHAR(255) NOT NULL UNIQUE,
		password    VARCHAR(255) NOT NULL,
		profile_pic TEXT,
		cover_pic   TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS posts (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id),
		descr      TEXT NOT NULL,
		img        TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posts_user_created ON posts (user_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id),
		post_id    BIGINT NOT NULL REFERENCES posts(id),
		descr      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS likes (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id),
		post_id    BIGINT NOT NULL REFERENCES posts(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT likes_user_post_unique UNIQUE (user_id, post_id)
	)`,

	`CREATE TABLE IF NOT EXISTS stories (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id),
		img        TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stories_created ON stories (created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS relationships (
		id               BIGSERIAL PRIMARY KEY,
		follower_user_id BIGINT NOT NULL REFERENCES users(id),
		followed_user_id BIGINT NOT NULL REFERENCES users(id),
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT relationships_pair_unique UNIQUE (follower_user_id, followed_user_id),
		CONSTRAINT relationships_no_self CHECK (follower_user_id <> followed_user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_relationships_followed ON relationships (followed_user_id)`,
}

// RunMigrations applies the schema. Every statement is idempotent so
// running it on every boot is safe.
func RunMigrations(db *sqlx.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
