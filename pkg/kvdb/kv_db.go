package kvdb

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/overpass"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_BUCKET = "overpassResponses"
)

// KVDB caches overpass responses in bbolt, keyed by a hash of the query text.
// values are msgpack encoded then zstd compressed.
type KVDB struct {
	db  *bbolt.DB
	ttl time.Duration
	enc *zstd.Encoder
	dec *zstd.Decoder
	now func() time.Time
	sync.Mutex
}

type cachedResponse struct {
	Query    string             `msgpack:"query"`
	StoredAt int64              `msgpack:"stored_at"`
	Elements []overpass.Element `msgpack:"elements"`
}

// NewKVDB creates the bucket if needed. ttl <= 0 keeps entries forever.
func NewKVDB(db *bbolt.DB, ttl time.Duration) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_BUCKET))
		return err
	})
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &KVDB{
		db:  db,
		ttl: ttl,
		enc: enc,
		dec: dec,
		now: time.Now,
	}, nil
}

func cacheKey(query string) []byte {
	return []byte(strconv.FormatUint(xxhash.Sum64String(query), 16))
}

// Get returns the cached elements for query. expired entries count as a miss.
func (db *KVDB) Get(query string) (elements []overpass.Element, ok bool, err error) {
	var entry cachedResponse
	err = db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		raw := b.Get(cacheKey(query))
		if raw == nil {
			return ErrorsKeyNotExists
		}
		return db.decode(raw, &entry)
	})
	if errors.Is(err, ErrorsKeyNotExists) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	// hash collision, treat as miss
	if entry.Query != query || db.expired(entry) {
		return nil, false, nil
	}
	if entry.Elements == nil {
		entry.Elements = []overpass.Element{}
	}
	return entry.Elements, true, nil
}

func (db *KVDB) Put(query string, elements []overpass.Element) error {
	value, err := db.encode(cachedResponse{
		Query:    query,
		StoredAt: db.now().Unix(),
		Elements: elements,
	})
	if err != nil {
		return err
	}

	db.Lock()
	defer db.Unlock()
	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		return b.Put(cacheKey(query), value)
	})
}

// Purge deletes expired entries and returns how many were removed.
func (db *KVDB) Purge() (int, error) {
	if db.ttl <= 0 {
		return 0, nil
	}
	db.Lock()
	defer db.Unlock()

	removed := 0
	err := db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		stale := [][]byte{}
		err := b.ForEach(func(k, v []byte) error {
			var entry cachedResponse
			if err := db.decode(v, &entry); err != nil || db.expired(entry) {
				stale = append(stale, append([]byte{}, k...))
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

func (db *KVDB) Close() error {
	db.dec.Close()
	return db.enc.Close()
}

func (db *KVDB) expired(entry cachedResponse) bool {
	if db.ttl <= 0 {
		return false
	}
	return db.now().Sub(time.Unix(entry.StoredAt, 0)) > db.ttl
}

func (db *KVDB) encode(entry cachedResponse) ([]byte, error) {
	raw, err := msgpack.Marshal(&entry)
	if err != nil {
		return nil, fmt.Errorf("encode cache entry: %w", err)
	}
	return db.enc.EncodeAll(raw, nil), nil
}

func (db *KVDB) decode(value []byte, entry *cachedResponse) error {
	raw, err := db.dec.DecodeAll(value, nil)
	if err != nil {
		return fmt.Errorf("decompress cache entry: %w", err)
	}
	if err := msgpack.Unmarshal(raw, entry); err != nil {
		return fmt.Errorf("decode cache entry: %w", err)
	}
	return nil
}
