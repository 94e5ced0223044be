package db

// Read-history: posts the user has opened, per board path.
const createSeenPostsTable = `
CREATE TABLE IF NOT EXISTS seen_posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    board_path TEXT NOT NULL,
    post_url TEXT NOT NULL,
    title TEXT,
    seen_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(board_path, post_url)
);

CREATE INDEX IF NOT EXISTS idx_seen_posts_board ON seen_posts(board_path);
`

const insertSeenPost = `
INSERT OR IGNORE INTO seen_posts (board_path, post_url, title)
VALUES (?, ?, ?)
`

const selectSeenPosts = `
SELECT post_url FROM seen_posts WHERE board_path = ?
`

const deleteSeenPostsBefore = `
DELETE FROM seen_posts WHERE seen_at < ?
`

// Small key/value table for session state (last selected board).
const createAppStateTable = `
CREATE TABLE IF NOT EXISTS app_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const upsertAppState = `
INSERT OR REPLACE INTO app_state (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
`

const selectAppState = `
SELECT value FROM app_state WHERE key = ?
`
