package mbtiles

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Archive is a tile store in the MBTiles format: one sqlite database holding
// a row per tile plus a metadata table.
type Archive struct {
	db         *sql.DB
	insertStmt *sql.Stmt
}

// Create opens (and if needed initializes) an MBTiles archive at given path
func Create(mbTilesPath string, name string, format string) (*Archive, error) {
	db, err := sql.Open("sqlite3", mbTilesPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		PRAGMA application_id = 0x4d504258;
		CREATE TABLE IF NOT EXISTS metadata (name text, value text);
		CREATE TABLE IF NOT EXISTS tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob);
		CREATE UNIQUE INDEX IF NOT EXISTS tile_index on tiles (zoom_level, tile_column, tile_row);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	insertStmt, err := db.Prepare("INSERT OR REPLACE INTO tiles (zoom_level, tile_column, tile_row, tile_data) VALUES (?, ?, ?, ?);")
	if err != nil {
		db.Close()
		return nil, err
	}

	archive := &Archive{db: db, insertStmt: insertStmt}

	// set name and format (and - if required - json)
	metas := [][2]string{
		{"name", name},
		{"format", format},
	}
	if format == "pbf" {
		metas = append(metas, [2]string{"json", `{ "vector_layers": [] }`})
	}
	if err := archive.InsertMeta(metas); err != nil {
		insertStmt.Close()
		db.Close()
		return nil, err
	}

	return archive, nil
}

// Close releases the database file
func (a *Archive) Close() error {
	if err := a.insertStmt.Close(); err != nil {
		return err
	}
	return a.db.Close()
}

// InsertTile stores tile data at (z, x, y). Row order is up to the caller;
// the MBTiles format counts rows from the south.
func (a *Archive) InsertTile(z, x, y uint32, tileData []byte) error {
	_, err := a.insertStmt.Exec(z, x, y, tileData)
	return err
}

// InsertMeta sets metadata entries
func (a *Archive) InsertMeta(entries [][2]string) error {
	for _, entry := range entries {
		if _, err := a.db.Exec("INSERT OR REPLACE INTO metadata (name, value) VALUES (?, ?);", entry[0], entry[1]); err != nil {
			return err
		}
	}
	return nil
}
