package store

// The kv table is the whole persistence substrate: two logical slots today
// (profiles, session), more only if the application ever grows new state.
// $N placeholders are understood by both the pgx and sqlite3 drivers.
const (
	getValue = `SELECT value
		FROM vibe_kv
		WHERE key = $1;`

	upsertValue = `INSERT INTO vibe_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`

	removeValue = `DELETE FROM vibe_kv
		WHERE key = $1;`
)
