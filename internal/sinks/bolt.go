package sinks

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
	bolt "go.etcd.io/bbolt"
)

var (
	metricsBucket = []byte("metrics")
	metaBucket    = []byte("meta")

	syncedAtKey = []byte("synced_at")
)

// BoltWriter is a sink that stores every metric descriptor as a JSON value
// in a bbolt database. Keys are big-endian bucket sequence numbers, so a
// cursor walks the metrics in document order and an empty slug is stored
// like any other.
type BoltWriter struct {
	ctx   context.Context
	fname string
}

func NewBoltWriter(ctx context.Context, fname string) (*BoltWriter, error) {
	l := log.GetLogger(ctx).WithField("sink", "boltfile").WithField("file", fname)
	return &BoltWriter{ctx: log.WithLogger(ctx, l), fname: fname}, nil
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Write replaces the content of both buckets in a single transaction
func (bw *BoltWriter) Write(doc *metrics.Document) error {
	if bw.ctx.Err() != nil {
		return bw.ctx.Err()
	}
	db, err := bolt.Open(bw.fname, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return fmt.Errorf("open bolt database: %w", err)
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{metricsBucket, metaBucket} {
			if tx.Bucket(name) == nil {
				continue
			}
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
		}
		mb, err := tx.CreateBucket(metricsBucket)
		if err != nil {
			return err
		}
		for _, d := range doc.All() {
			data, err := d.MarshalJSON()
			if err != nil {
				return err
			}
			seq, err := mb.NextSequence()
			if err != nil {
				return err
			}
			if err = mb.Put(sequenceKey(seq), data); err != nil {
				return err
			}
		}
		meta, err := tx.CreateBucket(metaBucket)
		if err != nil {
			return err
		}
		return meta.Put(syncedAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
	if err != nil {
		return err
	}
	log.GetLogger(bw.ctx).WithField("metrics", doc.Len()).Debug("document stored")
	return nil
}
