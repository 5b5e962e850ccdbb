package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/dgraph-io/badger/v4"
	"gopkg.in/yaml.v3"
)

const keyPrefix = "planarity/v1/"

// Config selects where and how a BadgerStore keeps its data.
type Config struct {
	// Dir is the database directory; created when missing. Ignored in memory.
	Dir string
	// InMemory keeps everything in RAM, for tests and one-shot runs.
	InMemory bool
	// Logger receives Badger's own messages; nil silences them.
	Logger *log.Logger
}

// BadgerStore is a Store backed by Badger v4. Values are YAML-encoded records.
type BadgerStore struct {
	db     *badger.DB
	closed atomic.Bool
}

// badgerLogger routes Badger's logging into charmbracelet/log.
type badgerLogger struct {
	l *log.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{})   { b.l.Errorf(format, args...) }
func (b badgerLogger) Warningf(format string, args ...interface{}) { b.l.Warnf(format, args...) }
func (b badgerLogger) Infof(format string, args ...interface{})    { b.l.Debugf(format, args...) }
func (b badgerLogger) Debugf(format string, args ...interface{})   { b.l.Debugf(format, args...) }

// OpenBadger opens (or creates) the database described by cfg.
func OpenBadger(cfg Config) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Dir == "" {
		return nil, errors.New("OpenBadger: directory is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
			return nil, fmt.Errorf("OpenBadger: create %s: %w", cfg.Dir, err)
		}
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{l: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("OpenBadger: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) check(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}

	return ctx.Err()
}

// Get implements Store.
func (s *BadgerStore) Get(ctx context.Context, key string) (Record, bool, error) {
	if err := s.check(ctx); err != nil {
		return Record{}, false, err
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("BadgerStore.Get: %w", err)
	}

	var rec Record
	if err = yaml.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, fmt.Errorf("BadgerStore.Get: decode %s: %w", key, err)
	}

	return rec, true, nil
}

// Put implements Store.
func (s *BadgerStore) Put(ctx context.Context, key string, rec Record) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	raw, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("BadgerStore.Put: encode %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), raw)
	})
	if err != nil {
		return fmt.Errorf("BadgerStore.Put: %w", err)
	}

	return nil
}

// Delete implements Store.
func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + key))
	})
	if err != nil {
		return fmt.Errorf("BadgerStore.Delete: %w", err)
	}

	return nil
}

// Clear implements Store.
func (s *BadgerStore) Clear(ctx context.Context) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if err := s.db.DropPrefix([]byte(keyPrefix)); err != nil {
		return fmt.Errorf("BadgerStore.Clear: %w", err)
	}

	return nil
}

// Len counts stored records.
func (s *BadgerStore) Len(ctx context.Context) (int, error) {
	if err := s.check(ctx); err != nil {
		return 0, err
	}

	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("BadgerStore.Len: %w", err)
	}

	return n, nil
}

// Close releases the database. Further calls fail with ErrClosed.
func (s *BadgerStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	return s.db.Close()
}
