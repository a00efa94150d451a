// Package seed populates an empty document store with the initial users,
// tables, menu and staff.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	menu "restaurantBackoffice/internal/modules/menu/domain"
	staff "restaurantBackoffice/internal/modules/staff/domain"
	tables "restaurantBackoffice/internal/modules/tables/domain"
	users "restaurantBackoffice/internal/modules/users/domain"
	"restaurantBackoffice/internal/platform/docstore"
	"restaurantBackoffice/internal/shared/money"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// Data is the YAML shape of a seed file. User passwords are plaintext and
// hashed when the document is built, unless passwordHash is given.
type Data struct {
	Users  []User  `yaml:"users"`
	Tables []Table `yaml:"tables"`
	Menu   []Item  `yaml:"menu"`
	Staff  []Staff `yaml:"staff"`
}

type User struct {
	ID           string `yaml:"id"`
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"passwordHash"`
	Role         string `yaml:"role"`
	Name         string `yaml:"name"`
}

type Table struct {
	ID       string `yaml:"id"`
	Number   int    `yaml:"number"`
	Capacity int    `yaml:"capacity"`
	Status   string `yaml:"status"`
	Location string `yaml:"location"`
}

type Item struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	Available   *bool  `yaml:"available"`
}

type Staff struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Email  string `yaml:"email"`
	Phone  string `yaml:"phone"`
	Status string `yaml:"status"`
}

// Default returns the built-in seed data.
func Default() (*Data, error) {
	return Parse(defaultSeed)
}

// Load reads a seed file, falling back to the built-in data when path is empty.
func Load(path string) (*Data, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &data, nil
}

// Hasher turns a plaintext password into its stored form.
type Hasher func(plain string) (string, error)

// Document converts the seed into a store document. Collections without
// seed entries start empty.
func (d *Data) Document(hash Hasher) (*docstore.Document, error) {
	doc := docstore.NewDocument()

	for _, u := range d.Users {
		stored := u.PasswordHash
		if stored == "" {
			h, err := hash(u.Password)
			if err != nil {
				return nil, fmt.Errorf("seed user %s: %w", u.ID, err)
			}
			stored = h
		}
		docstore.Users.Append(doc, users.User{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: stored,
			Role:         u.Role,
			Name:         u.Name,
		})
	}

	numbers := make(map[int]string, len(d.Tables))
	for _, t := range d.Tables {
		if other, dup := numbers[t.Number]; dup {
			return nil, fmt.Errorf("seed table %s: number %d already used by table %s", t.ID, t.Number, other)
		}
		numbers[t.Number] = t.ID
		status := tables.TableStatusAvailable
		if t.Status != "" {
			parsed, err := tables.ParseTableStatus(t.Status)
			if err != nil {
				return nil, fmt.Errorf("seed table %s: %w", t.ID, err)
			}
			status = parsed
		}
		docstore.Tables.Append(doc, tables.Table{
			ID:       t.ID,
			Number:   t.Number,
			Capacity: t.Capacity,
			Status:   status,
			Location: t.Location,
		})
	}

	for _, m := range d.Menu {
		price, err := decimal.NewFromString(m.Price)
		if err != nil {
			return nil, fmt.Errorf("seed menu item %s: price %q: %w", m.ID, m.Price, err)
		}
		available := true
		if m.Available != nil {
			available = *m.Available
		}
		docstore.Menu.Append(doc, menu.MenuItem{
			ID:          m.ID,
			Name:        m.Name,
			Category:    m.Category,
			Price:       money.Round(price),
			Description: m.Description,
			Available:   available,
		})
	}

	for _, s := range d.Staff {
		status := s.Status
		if status == "" {
			status = staff.DefaultStatus
		}
		docstore.Staff.Append(doc, staff.Member{
			ID:     s.ID,
			Name:   s.Name,
			Role:   s.Role,
			Email:  s.Email,
			Phone:  s.Phone,
			Status: status,
		})
	}

	return doc, nil
}

// Apply saves the seed document when the store has never been written.
// It reports whether seeding happened.
func Apply(ctx context.Context, store docstore.Store, data *Data, hash Hasher) (bool, error) {
	exists, err := store.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("check store: %w", err)
	}
	if exists {
		slog.Debug("document store already initialised, skipping seed")
		return false, nil
	}

	doc, err := data.Document(hash)
	if err != nil {
		return false, err
	}
	if err := store.Save(ctx, doc); err != nil {
		return false, fmt.Errorf("save seed: %w", err)
	}
	slog.Info("document store seeded",
		slog.Int("users", len(doc.Users)),
		slog.Int("tables", len(doc.Tables)),
		slog.Int("menu", len(doc.Menu)),
		slog.Int("staff", len(doc.Staff)),
	)
	return true, nil
}
