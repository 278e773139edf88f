package db

// SchemaSQL is the complete schema for fresh installs. The local store is a
// single named snapshot slot, not per-entity tables: every mutation rewrites
// the whole serialized ledger, and startup reads it back.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	slot TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
