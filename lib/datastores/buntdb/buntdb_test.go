package nameDataStoreBuntdb

import (
	"testing"
	"time"

	"github.com/goshuirc/ircname/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/buntdb"
)

func newTestStore(t *testing.T, bus *ircname.HookEmitter) *DataStore {
	return newTestStoreWithParser(t, nil, bus)
}

func newTestStoreWithParser(t *testing.T, parser *ircname.Parser, bus *ircname.HookEmitter) *DataStore {
	t.Helper()

	ds, err := Open(":memory:", parser, bus)
	require.NoError(t, err)
	t.Cleanup(func() {
		ds.Close()
	})

	ds.now = func() time.Time {
		return time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	require.NoError(t, ds.Setup())
	return ds
}

func TestSetup(t *testing.T) {
	ds := newTestStore(t, nil)

	// running it again is fine
	require.NoError(t, ds.Setup())

	err := ds.Db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(KeySchemaVersion, "0", nil)
		return err
	})
	require.NoError(t, err)
	assert.Error(t, ds.Setup())
}

func TestReserveAndLookup(t *testing.T) {
	ds := newTestStore(t, nil)

	reservation, err := ds.Reserve(ircname.MustNickname("Dan"), "daniel@danieloaks.net")
	require.NoError(t, err)
	assert.Equal(t, "Dan", reservation.Name.String())

	found, err := ds.Lookup(ircname.MustNickname("DAN"))
	require.NoError(t, err)
	assert.Equal(t, "Dan", found.Name.String())
	assert.Equal(t, "daniel@danieloaks.net", found.Owner)
	assert.True(t, found.Reserved.Equal(time.Date(2017, 3, 1, 12, 0, 0, 0, time.UTC)))

	_, err = ds.Lookup(ircname.MustNickname("Darren"))
	assert.ErrorIs(t, err, ircname.ErrNameNotReserved)
}

func TestReserve_CaseInsensitive(t *testing.T) {
	ds := newTestStore(t, nil)

	_, err := ds.Reserve(ircname.MustNickname("TestName"), "first")
	require.NoError(t, err)

	_, err = ds.Reserve(ircname.MustNickname("testname"), "second")
	assert.ErrorIs(t, err, ircname.ErrNameReserved)

	found, err := ds.Lookup(ircname.MustNickname("testNAME"))
	require.NoError(t, err)
	assert.Equal(t, "first", found.Owner)
}

func TestRelease(t *testing.T) {
	ds := newTestStore(t, nil)

	_, err := ds.Reserve(ircname.MustNickname("Dan"), "dan")
	require.NoError(t, err)

	require.NoError(t, ds.Release(ircname.MustNickname("dAN")))
	_, err = ds.Lookup(ircname.MustNickname("Dan"))
	assert.ErrorIs(t, err, ircname.ErrNameNotReserved)

	assert.ErrorIs(t, ds.Release(ircname.MustNickname("Dan")), ircname.ErrNameNotReserved)
}

func TestAll(t *testing.T) {
	ds := newTestStore(t, nil)

	reservations, err := ds.All()
	require.NoError(t, err)
	assert.Empty(t, reservations)

	for _, name := range []string{"jlatt", "Darren", "dan"} {
		_, err := ds.Reserve(ircname.MustNickname(name), "owner")
		require.NoError(t, err)
	}

	reservations, err = ds.All()
	require.NoError(t, err)
	require.Len(t, reservations, 3)
	assert.Equal(t, "dan", reservations[0].Name.String())
	assert.Equal(t, "Darren", reservations[1].Name.String())
	assert.Equal(t, "jlatt", reservations[2].Name.String())
}

func TestAll_CorruptEntry(t *testing.T) {
	ds := newTestStore(t, nil)

	err := ds.Db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set("name.info BROKEN", `{"name":"3broken"}`, nil)
		return err
	})
	require.NoError(t, err)

	_, err = ds.All()
	assert.Error(t, err)
}

func TestHooks(t *testing.T) {
	bus := ircname.MakeHookEmitter()

	var reserved []string
	var released []string
	bus.Register(ircname.HookNameReservedName, func(hook interface{}) {
		reserved = append(reserved, hook.(*ircname.HookNameReserved).Reservation.Name.String())
	})
	bus.Register(ircname.HookNameReleasedName, func(hook interface{}) {
		released = append(released, hook.(*ircname.HookNameReleased).Name.String())
	})

	ds := newTestStore(t, bus)

	_, err := ds.Reserve(ircname.MustNickname("Dan"), "dan")
	require.NoError(t, err)
	_, err = ds.Reserve(ircname.MustNickname("dan"), "dan")
	require.Error(t, err)
	require.NoError(t, ds.Release(ircname.MustNickname("DAN")))

	assert.Equal(t, []string{"Dan"}, reserved)
	assert.Equal(t, []string{"DAN"}, released)
}

func TestReserve_ConfiguredGrammar(t *testing.T) {
	config, err := ircname.ParseConfig([]byte(`
names:
  nickname:
    leading: [{low: 48, high: 125}]
    trailing: [{low: 48, high: 125}]
`))
	require.NoError(t, err)
	parser := config.Parser()
	ds := newTestStoreWithParser(t, parser, nil)

	nick, err := parser.Nickname("3Dan")
	require.NoError(t, err)
	_, err = ds.Reserve(nick, "dan")
	require.NoError(t, err)

	_, err = ds.Reserve(ircname.MustNickname("Darren"), "darren")
	require.NoError(t, err)

	found, err := ds.Lookup(nick)
	require.NoError(t, err)
	assert.Equal(t, "3Dan", found.Name.String())
	assert.Equal(t, "dan", found.Owner)

	reservations, err := ds.All()
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, "3Dan", reservations[0].Name.String())
	assert.Equal(t, "Darren", reservations[1].Name.String())
}

func TestStoredInfo_PlainName(t *testing.T) {
	ds := newTestStore(t, nil)

	_, err := ds.Reserve(ircname.MustNickname("Dan"), "dan")
	require.NoError(t, err)

	err = ds.Db.View(func(tx *buntdb.Tx) error {
		info, err := tx.Get("name.info DAN")
		if err != nil {
			return err
		}
		assert.Contains(t, info, `"name":"Dan"`)
		return nil
	})
	require.NoError(t, err)
}
