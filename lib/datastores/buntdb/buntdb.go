// Copyright (c) 2017 Darren Whitlen <darren@kiwiirc.com>
// released under the MIT license

package nameDataStoreBuntdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goshuirc/ircname/lib"
	"github.com/tidwall/buntdb"
)

const (
	// 'version' of the database schema
	KeySchemaVersion = "db.version"
	// latest schema of the db
	LatestDbSchema = "1"
	// reservation info, keyed by the folded name
	KeyNameInfo = "name.info %s"
)

// DataStore is an ircname.Registry kept in a buntdb file.
type DataStore struct {
	Db     *buntdb.DB
	Bus    *ircname.HookEmitter
	Parser *ircname.Parser

	// now is swapped out by tests
	now func() time.Time
}

var _ ircname.Registry = (*DataStore)(nil)

// NameInfo is the stored form of a reservation. The name is kept as plain
// text and parsed again with the store's parser on load.
type NameInfo struct {
	Name     string    `json:"name"`
	Owner    string    `json:"owner"`
	Reserved time.Time `json:"reserved"`
}

// Open opens the datastore at path. ":memory:" gives a throwaway store.
// Stored names are read back with parser, which should be the parser they
// were accepted with; nil means the default grammars.
func Open(path string, parser *ircname.Parser, bus *ircname.HookEmitter) (*DataStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, errors.New("Could not open DB: " + err.Error())
	}

	if parser == nil {
		parser = ircname.NewParser(nil, nil)
	}

	return &DataStore{
		Db:     db,
		Bus:    bus,
		Parser: parser,
		now:    time.Now,
	}, nil
}

// Setup writes the schema version to a new database, and refuses databases
// written by a different schema.
func (ds *DataStore) Setup() error {
	return ds.Db.Update(func(tx *buntdb.Tx) error {
		version, err := tx.Get(KeySchemaVersion)
		if err == buntdb.ErrNotFound {
			_, _, err = tx.Set(KeySchemaVersion, LatestDbSchema, nil)
			return err
		}
		if err != nil {
			return fmt.Errorf("Could not read schema version: %w", err)
		}
		if version != LatestDbSchema {
			return fmt.Errorf("Database schema is version %s, expected %s", version, LatestDbSchema)
		}
		return nil
	})
}

// Reserve records owner as the holder of name.
func (ds *DataStore) Reserve(name ircname.Nickname, owner string) (*ircname.Reservation, error) {
	reservation := &ircname.Reservation{
		Name:     name,
		Owner:    owner,
		Reserved: ds.now().UTC(),
	}

	info, err := json.Marshal(NameInfo{
		Name:     name.String(),
		Owner:    reservation.Owner,
		Reserved: reservation.Reserved,
	})
	if err != nil {
		return nil, fmt.Errorf("Could not reserve name (marshalling info): %w", err)
	}

	err = ds.Db.Update(func(tx *buntdb.Tx) error {
		key := nameKey(name)

		_, err := tx.Get(key)
		if err == nil {
			return ircname.ErrNameReserved
		}
		if err != buntdb.ErrNotFound {
			return fmt.Errorf("Could not reserve name (checking db): %w", err)
		}

		_, _, err = tx.Set(key, string(info), nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	ds.Bus.Dispatch(ircname.HookNameReservedName, &ircname.HookNameReserved{
		Reservation: reservation,
	})
	return reservation, nil
}

// Release drops the reservation on name.
func (ds *DataStore) Release(name ircname.Nickname) error {
	err := ds.Db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(nameKey(name))
		if err == buntdb.ErrNotFound {
			return ircname.ErrNameNotReserved
		}
		return err
	})
	if err != nil {
		return err
	}

	ds.Bus.Dispatch(ircname.HookNameReleasedName, &ircname.HookNameReleased{
		Name: name,
	})
	return nil
}

// Lookup returns the reservation on name.
func (ds *DataStore) Lookup(name ircname.Nickname) (*ircname.Reservation, error) {
	var reservation *ircname.Reservation

	err := ds.Db.View(func(tx *buntdb.Tx) error {
		info, err := tx.Get(nameKey(name))
		if err == buntdb.ErrNotFound {
			return ircname.ErrNameNotReserved
		}
		if err != nil {
			return err
		}

		reservation, err = ds.loadReservation(info)
		return err
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// All returns every reservation, ordered by name.
func (ds *DataStore) All() ([]*ircname.Reservation, error) {
	reservations := []*ircname.Reservation{}

	var loadErr error
	err := ds.Db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(fmt.Sprintf(KeyNameInfo, "*"), func(key, value string) bool {
			reservation, err := ds.loadReservation(value)
			if err != nil {
				loadErr = fmt.Errorf("Could not load %s: %w", strings.TrimPrefix(key, "name.info "), err)
				return false
			}

			reservations = append(reservations, reservation)
			return true
		})
	})
	if err != nil {
		return nil, err
	}
	if loadErr != nil {
		return nil, loadErr
	}

	return reservations, nil
}

// Close closes the underlying database.
func (ds *DataStore) Close() error {
	return ds.Db.Close()
}

func nameKey(name ircname.Nickname) string {
	return fmt.Sprintf(KeyNameInfo, name.Fold())
}

func (ds *DataStore) loadReservation(info string) (*ircname.Reservation, error) {
	nameInfo := &NameInfo{}
	err := json.Unmarshal([]byte(info), nameInfo)
	if err != nil {
		return nil, fmt.Errorf("Could not load reservation (unmarshalling info): %w", err)
	}

	name, err := ds.Parser.Nickname(nameInfo.Name)
	if err != nil {
		return nil, fmt.Errorf("Could not load reservation (parsing name %q): %w", nameInfo.Name, err)
	}

	return &ircname.Reservation{
		Name:     name,
		Owner:    nameInfo.Owner,
		Reserved: nameInfo.Reserved,
	}, nil
}
