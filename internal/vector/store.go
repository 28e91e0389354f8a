package vector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/llm"
)

const embeddingKeyPrefix = "embidx"

// Store persists built embedding matrices so restarts skip the embedding
// pass. Entries are keyed by corpus hash, so a changed corpus silently
// triggers a rebuild.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

type badgerLoggerAdapter struct {
	logger zerolog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error().Msgf(msg, items...)
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn().Msgf(msg, items...)
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Debug().Msgf(msg, items...)
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug().Msgf(msg, items...)
}

// OpenStore opens the badger database at dir. An empty dir opens an
// in-memory database, useful for tests.
func OpenStore(dir string, logger zerolog.Logger) (*Store, error) {
	var opts badger.Options
	if dir == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dir)
	}
	opts = opts.WithLogger(&badgerLoggerAdapter{logger: logger})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open embedding store: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func embeddingKey(hash string) []byte {
	return []byte(embeddingKeyPrefix + ":" + hash)
}

// LoadOrBuild returns an index for the entries, reusing persisted embeddings
// when the corpus hash matches and rebuilding (then persisting) otherwise.
func (s *Store) LoadOrBuild(ctx context.Context, embedder llm.EmbedderClient, entries []Entry) (*MemoryIndex, error) {
	hash := CorpusHash(entries)

	if idx, err := s.load(embedder, entries, hash); err == nil {
		s.logger.Info().Str("hash", hash[:12]).Int("entries", idx.Len()).Msg("loaded embedding index from store")
		return idx, nil
	} else if !errors.Is(err, badger.ErrKeyNotFound) {
		s.logger.Warn().Err(err).Msg("embedding store read failed, rebuilding index")
	}

	idx, err := BuildIndex(ctx, embedder, entries)
	if err != nil {
		return nil, err
	}
	if err := s.save(idx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist embedding index")
	}
	return idx, nil
}

func (s *Store) load(embedder llm.EmbedderClient, entries []Entry, hash string) (*MemoryIndex, error) {
	var vectors [][]float32
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(embeddingKey(hash))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &vectors)
		})
	})
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(entries) {
		return nil, fmt.Errorf("stored vector count %d does not match corpus size %d", len(vectors), len(entries))
	}

	idx := &MemoryIndex{
		embedder: embedder,
		items:    make([]indexed, 0, len(entries)),
		hash:     hash,
	}
	for i, e := range entries {
		idx.items = append(idx.items, indexed{entry: e, vector: vectors[i]})
	}
	return idx, nil
}

func (s *Store) save(idx *MemoryIndex) error {
	vectors := make([][]float32, 0, len(idx.items))
	for _, it := range idx.items {
		vectors = append(vectors, it.vector)
	}
	data, err := json.Marshal(vectors)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(embeddingKey(idx.hash), data)
	})
}
