// Package catalog stores the ingredient reference data (oil name, SAP
// value, iodine value, fatty-acid profile, category, default unit) in
// an embedded SQLite database and exposes the typeahead search the
// ledger UI populates rows from. The engine itself never searches; it
// receives catalog data already resolved into OilEntry fields.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // register the sqlite database/sql driver

	"github.com/latherlab/saponify/internal/model"
)

// Ingredient is one catalog record. SAPKoh is mg KOH per gram of fat;
// FattyAcids maps acid name to percent of the ingredient's own mass.
type Ingredient struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	DefaultUnit model.Unit         `json:"default_unit"`
	SAPKoh      float64            `json:"sap_koh"`
	IodineValue float64            `json:"iodine_value"`
	INSValue    float64            `json:"ins_value,omitempty"`
	FattyAcids  map[string]float64 `json:"fatty_acids,omitempty"`
}

// ToOilEntry converts a catalog record into a fresh ledger row.
func (i Ingredient) ToOilEntry() model.OilEntry {
	o := model.NewOilEntry(i.Name)
	o.SAPKoh = i.SAPKoh
	o.IodineValue = i.IodineValue
	o.INSValue = i.INSValue
	if len(i.FattyAcids) > 0 {
		o.FattyAcids = make(map[string]float64, len(i.FattyAcids))
		for k, v := range i.FattyAcids {
			o.FattyAcids[k] = v
		}
	}
	return o
}

// Store is a SQLite-backed ingredient catalog.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database at path and seeds it
// with the built-in oil table when empty. Use ":memory:" for an
// ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS ingredients (
		name         TEXT PRIMARY KEY,
		category     TEXT NOT NULL DEFAULT '',
		default_unit TEXT NOT NULL DEFAULT 'g',
		sap_koh      REAL NOT NULL DEFAULT 0,
		iodine_value REAL NOT NULL DEFAULT 0,
		ins_value    REAL NOT NULL DEFAULT 0,
		fatty_acids  TEXT NOT NULL DEFAULT '{}'
	);`)
	if err != nil {
		return fmt.Errorf("init catalog schema: %w", err)
	}
	return nil
}

func (s *Store) seedIfEmpty() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ingredients`).Scan(&n); err != nil {
		return fmt.Errorf("count ingredients: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, ing := range builtinIngredients {
		if err := s.Upsert(ing); err != nil {
			return err
		}
	}
	return nil
}

// Upsert inserts or replaces an ingredient by name.
func (s *Store) Upsert(ing Ingredient) error {
	fa, err := json.Marshal(ing.FattyAcids)
	if err != nil {
		return fmt.Errorf("encode fatty acids for %q: %w", ing.Name, err)
	}
	unit := ing.DefaultUnit
	if unit == "" {
		unit = model.UnitGram
	}
	_, err = s.db.Exec(`INSERT INTO ingredients
		(name, category, default_unit, sap_koh, iodine_value, ins_value, fatty_acids)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			default_unit = excluded.default_unit,
			sap_koh = excluded.sap_koh,
			iodine_value = excluded.iodine_value,
			ins_value = excluded.ins_value,
			fatty_acids = excluded.fatty_acids`,
		ing.Name, ing.Category, string(unit), ing.SAPKoh, ing.IodineValue, ing.INSValue, string(fa))
	if err != nil {
		return fmt.Errorf("upsert ingredient %q: %w", ing.Name, err)
	}
	return nil
}

// Search returns up to limit ingredients whose name contains the query,
// case-insensitively, name-prefix matches first. An empty query lists
// the catalog from the top.
func (s *Store) Search(query string, limit int) ([]Ingredient, error) {
	if limit <= 0 {
		limit = 10
	}
	q := strings.TrimSpace(strings.ToLower(query))
	rows, err := s.db.Query(`SELECT name, category, default_unit, sap_koh, iodine_value, ins_value, fatty_acids
		FROM ingredients
		WHERE LOWER(name) LIKE '%' || ? || '%'
		ORDER BY CASE WHEN LOWER(name) LIKE ? || '%' THEN 0 ELSE 1 END, name
		LIMIT ?`, q, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search ingredients: %w", err)
	}
	defer rows.Close()

	var out []Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, rows.Err()
}

// Get returns the ingredient with the exact (case-insensitive) name.
func (s *Store) Get(name string) (Ingredient, bool, error) {
	row := s.db.QueryRow(`SELECT name, category, default_unit, sap_koh, iodine_value, ins_value, fatty_acids
		FROM ingredients WHERE LOWER(name) = LOWER(?)`, name)
	ing, err := scanIngredient(row)
	if err == sql.ErrNoRows {
		return Ingredient{}, false, nil
	}
	if err != nil {
		return Ingredient{}, false, err
	}
	return ing, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIngredient(r rowScanner) (Ingredient, error) {
	var ing Ingredient
	var unit, fa string
	if err := r.Scan(&ing.Name, &ing.Category, &unit, &ing.SAPKoh, &ing.IodineValue, &ing.INSValue, &fa); err != nil {
		if err == sql.ErrNoRows {
			return Ingredient{}, err
		}
		return Ingredient{}, fmt.Errorf("scan ingredient: %w", err)
	}
	ing.DefaultUnit = model.Unit(unit)
	if fa != "" && fa != "{}" {
		if err := json.Unmarshal([]byte(fa), &ing.FattyAcids); err != nil {
			return Ingredient{}, fmt.Errorf("decode fatty acids for %q: %w", ing.Name, err)
		}
	}
	return ing, nil
}
