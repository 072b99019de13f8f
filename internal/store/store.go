// Package store persists the ledger records of a single client: the
// transaction collection, the category set and the profile singleton.
//
// Each record kind lives under a fixed key in a key-value backend,
// JSON-serialized. The store is constructed once per process and passed to
// its consumers explicitly.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/kv"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Keys the record kinds are persisted under.
const (
	keyTransactions = "transactions"
	keyProfile      = "profile"
	keyCategories   = "categories"
)

// ErrCorruptRecord is returned when a persisted value cannot be parsed.
// The store never silently resets corrupted data.
var ErrCorruptRecord = errors.New("persisted record cannot be parsed")

// Store is the repository for the client's ledger data.
type Store struct {
	backend kv.Backend
}

// New returns a Store persisting to the given backend.
func New(backend kv.Backend) *Store {
	return &Store{backend: backend}
}

// Ping reports whether the underlying backend is reachable.
func (s *Store) Ping() error {
	return s.backend.Ping()
}

// Transactions returns all persisted transactions.
// No ordering is guaranteed, consumers sort for display.
func (s *Store) Transactions() ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.read(keyTransactions, &transactions)
	if err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}

	return transactions, nil
}

// SaveTransaction prepends a transaction to the persisted collection.
//
// It always inserts. A caller supplying an already-used ID creates a second
// entry. The amount is rounded to 2 decimal places at write time.
func (s *Store) SaveTransaction(transaction models.Transaction) error {
	transactions, err := s.Transactions()
	if err != nil {
		return err
	}

	transaction.Amount = transaction.Amount.Round(2)
	transactions = append([]models.Transaction{transaction}, transactions...)

	return s.write(keyTransactions, transactions)
}

// TransactionUpdate holds the fields of a transaction that can be changed
// after creation. Nil fields are left untouched.
type TransactionUpdate struct {
	Amount   *decimal.Decimal
	Type     *models.TransactionType
	Category *string
	Note     *string
	Date     *time.Time
	Icon     *models.Icon
	Color    *string
}

// UpdateTransaction merges the set fields of the update into the transaction
// with the given ID. If no transaction matches, nothing happens.
func (s *Store) UpdateTransaction(id string, update TransactionUpdate) error {
	transactions, err := s.Transactions()
	if err != nil {
		return err
	}

	found := false
	for i := range transactions {
		if transactions[i].ID != id {
			continue
		}
		found = true

		if update.Amount != nil {
			transactions[i].Amount = update.Amount.Round(2)
		}
		if update.Type != nil {
			transactions[i].Type = *update.Type
		}
		if update.Category != nil {
			transactions[i].Category = *update.Category
		}
		if update.Note != nil {
			transactions[i].Note = *update.Note
		}
		if update.Date != nil {
			transactions[i].Date = *update.Date
		}
		if update.Icon != nil {
			transactions[i].Icon = *update.Icon
		}
		if update.Color != nil {
			transactions[i].Color = *update.Color
		}
	}

	if !found {
		return nil
	}

	return s.write(keyTransactions, transactions)
}

// DeleteTransaction removes all transactions with the given ID.
// Deleting an absent ID leaves the collection unchanged.
func (s *Store) DeleteTransaction(id string) error {
	transactions, err := s.Transactions()
	if err != nil {
		return err
	}

	remaining := transactions[:0]
	for _, transaction := range transactions {
		if transaction.ID != id {
			remaining = append(remaining, transaction)
		}
	}

	if len(remaining) == len(transactions) {
		return nil
	}

	return s.write(keyTransactions, remaining)
}

// Profile returns the persisted profile, or nil when none exists.
func (s *Store) Profile() (*models.Profile, error) {
	var profile *models.Profile

	err := s.read(keyProfile, &profile)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// SaveProfile overwrites the profile record. There is no partial merge.
func (s *Store) SaveProfile(profile models.Profile) error {
	return s.write(keyProfile, profile)
}

// Categories returns the persisted category set, falling back to the
// built-in seed set when nothing has been persisted yet.
func (s *Store) Categories() ([]models.Category, error) {
	var categories []models.Category

	err := s.read(keyCategories, &categories)
	if err != nil {
		return nil, err
	}

	if categories == nil {
		return models.SeedCategories(), nil
	}

	return categories, nil
}

// SaveCategory appends a category to the current set and persists the full
// list. On first use this persists the seed set together with the addition.
func (s *Store) SaveCategory(category models.Category) error {
	categories, err := s.Categories()
	if err != nil {
		return err
	}

	return s.write(keyCategories, append(categories, category))
}

// CategoryByName returns the first category with the given display name.
// The second return value reports whether one was found.
func (s *Store) CategoryByName(name string) (models.Category, bool, error) {
	categories, err := s.Categories()
	if err != nil {
		return models.Category{}, false, err
	}

	for _, category := range categories {
		if category.Name == name {
			return category, true, nil
		}
	}

	return models.Category{}, false, nil
}

func (s *Store) read(key string, target any) error {
	value, ok, err := s.backend.Get(key)
	if err != nil || !ok {
		return err
	}

	err = json.Unmarshal([]byte(value), target)
	if err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorruptRecord, key, err)
	}

	return nil
}

func (s *Store) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.backend.Set(key, string(data))
}
