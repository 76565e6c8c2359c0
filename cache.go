package hledgerweb

import (
	"sync"
	"time"
)

// Default lifetimes for the two cached read views.
const (
	TransactionsTTL = 30 * time.Second
	AccountsTTL     = 60 * time.Second
)

// entry holds one cached value together with the journal file it was read
// from. A single-journal deployment is assumed: the cache is not partitioned
// by file, it only remembers the last file and refuses to serve another.
type entry[T any] struct {
	file   string
	at     time.Time
	values []T
	valid  bool
}

func (e *entry[T]) get(file string, now time.Time, ttl time.Duration) ([]T, bool) {
	if !e.valid || e.file != file || now.Sub(e.at) >= ttl {
		return nil, false
	}
	return e.values, true
}

func (e *entry[T]) put(file string, now time.Time, values []T) {
	*e = entry[T]{file: file, at: now, values: values, valid: true}
}

// Cache is the read-through cache for the unfiltered transaction list and the
// account list. Filtered queries never touch it. It is owned by the Service
// and lives for the whole process; mutations call Invalidate.
type Cache struct {
	mu       sync.Mutex
	txs      entry[Transaction]
	accounts entry[string]

	// now is replaceable in tests.
	now func() time.Time
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// Transactions returns the cached unfiltered transaction list for file, if
// still fresh.
func (c *Cache) Transactions(file string) ([]Transaction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.txs.get(file, c.now(), TransactionsTTL)
}

// StoreTransactions records a freshly parsed unfiltered transaction list.
func (c *Cache) StoreTransactions(file string, txs []Transaction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.txs.put(file, c.now(), txs)
}

// Accounts returns the cached account name list for file, if still fresh.
func (c *Cache) Accounts(file string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accounts.get(file, c.now(), AccountsTTL)
}

// StoreAccounts records a freshly fetched account name list.
func (c *Cache) StoreAccounts(file string, accounts []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts.put(file, c.now(), accounts)
}

// Invalidate drops both cached lists. Every successful mutation calls this
// unconditionally, whichever file actually changed.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.txs = entry[Transaction]{}
	c.accounts = entry[string]{}
}
