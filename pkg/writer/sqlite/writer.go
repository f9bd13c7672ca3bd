// Package sqlite persists a built modification index as an SQLite snapshot,
// so the one-time XML parse can be shared read-only across processes.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ikcgroup/ptmvalidate/pkg/unimod"
)

const schema = `
CREATE TABLE IF NOT EXISTS mods (
	mod_id integer PRIMARY KEY,
	name text,
	full_name text,
	mono_mass real,
	avg_mass real,
	composition text
);
CREATE INDEX IF NOT EXISTS name_index ON mods(name);
CREATE INDEX IF NOT EXISTS full_name_index ON mods(full_name);

CREATE TABLE IF NOT EXISTS mod_sites (
	mod_id integer,
	site text,
	classification text
);
CREATE INDEX IF NOT EXISTS id_index ON mod_sites(mod_id);
`

// Write stores the index at path. Rows are written in table order inside a
// single transaction, so row order round-trips through Load.
func Write(path string, idx *unimod.Index) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	modStmt, err := tx.Prepare(`
		INSERT INTO mods (mod_id, name, full_name, mono_mass, avg_mass, composition)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare mods statement: %w", err)
	}
	defer modStmt.Close()

	siteStmt, err := tx.Prepare(`
		INSERT INTO mod_sites (mod_id, site, classification)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare mod_sites statement: %w", err)
	}
	defer siteStmt.Close()

	for _, mod := range idx.Modifications() {
		_, err := modStmt.Exec(mod.RecordID, mod.Name, mod.FullName,
			mod.MonoMass, mod.AvgMass, mod.Composition)
		if err != nil {
			return fmt.Errorf("failed to insert modification %q: %w", mod.Name, err)
		}
	}

	for _, site := range idx.Sites() {
		if _, err := siteStmt.Exec(site.RecordID, site.Site, site.Classification); err != nil {
			return fmt.Errorf("failed to insert site for record %d: %w", site.RecordID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load rebuilds an index from a snapshot written by Write. Rows are read in
// rowid order, preserving the catalog's table order.
func Load(path string) (*unimod.Index, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	mods, err := loadMods(db)
	if err != nil {
		return nil, err
	}
	sites, err := loadSites(db)
	if err != nil {
		return nil, err
	}

	return unimod.NewIndex(mods, sites)
}

func loadMods(db *sql.DB) ([]unimod.Modification, error) {
	rows, err := db.Query(`
		SELECT mod_id, name, full_name, mono_mass, avg_mass, composition
		FROM mods ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mods: %w", err)
	}
	defer rows.Close()

	var mods []unimod.Modification
	for rows.Next() {
		var mod unimod.Modification
		err := rows.Scan(&mod.RecordID, &mod.Name, &mod.FullName,
			&mod.MonoMass, &mod.AvgMass, &mod.Composition)
		if err != nil {
			return nil, fmt.Errorf("failed to scan modification row: %w", err)
		}
		mods = append(mods, mod)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mods: %w", err)
	}
	return mods, nil
}

func loadSites(db *sql.DB) ([]unimod.Site, error) {
	rows, err := db.Query(`
		SELECT mod_id, site, classification
		FROM mod_sites ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mod_sites: %w", err)
	}
	defer rows.Close()

	var sites []unimod.Site
	for rows.Next() {
		var site unimod.Site
		if err := rows.Scan(&site.RecordID, &site.Site, &site.Classification); err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mod_sites: %w", err)
	}
	return sites, nil
}
