package store

import "context"

// NullStore never holds anything; it stands in when caching is disabled.
type NullStore struct{}

func (NullStore) Get(context.Context, string) (Record, bool, error) { return Record{}, false, nil }
func (NullStore) Put(context.Context, string, Record) error         { return nil }
func (NullStore) Delete(context.Context, string) error              { return nil }
func (NullStore) Clear(context.Context) error                       { return nil }
func (NullStore) Close() error                                      { return nil }
