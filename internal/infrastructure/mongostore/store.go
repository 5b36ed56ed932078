// Package mongostore implementación de store.Client sobre MongoDB: colecciones = tablas,
// change streams para suscripciones y sesiones para transacciones (requiere replica set).
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/pkg/config"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

var (
	_ store.Client     = (*Store)(nil)
	_ store.Transactor = (*TransactionalStore)(nil)
	_ store.Tx         = (*mongoTx)(nil)
)

const locksCollection = "_locks"

// Connect abre el cliente y verifica la conexión.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices únicos parciales de store.Schema (solo documentos donde la
// columna es texto). Es idempotente; se llama al arrancar.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, t := range uniqueIndexes() {
		if _, err := db.Collection(t.table).Indexes().CreateMany(ctx, t.models); err != nil {
			return fmt.Errorf("create indexes %s: %w", t.table, err)
		}
	}
	return nil
}

type tableIndexes struct {
	table  string
	models []mongo.IndexModel
}

func uniqueIndexes() []tableIndexes {
	var out []tableIndexes
	for _, name := range store.Tables() {
		t := store.Schema[name]
		if len(t.Unique) == 0 {
			continue
		}
		ti := tableIndexes{table: name}
		for _, col := range t.Unique {
			ti.models = append(ti.models, mongo.IndexModel{
				Keys: bson.D{{Key: col, Value: 1}},
				Options: options.Index().
					SetName(name + "_" + col + "_key").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{col: bson.M{"$type": "string"}}),
			})
		}
		out = append(out, ti)
	}
	return out
}

// Store cliente sin transacciones (servidor standalone).
type Store struct {
	db  *mongo.Database
	log *logger.Logger
	now func() time.Time
}

// New construye el almacén sobre la base de datos.
func New(db *mongo.Database, log *logger.Logger) *Store {
	return &Store{db: db, log: log.Named("mongostore"), now: func() time.Time { return time.Now().UTC() }}
}

// Select ejecuta Find con filtro, orden, límite y proyección.
func (s *Store) Select(ctx context.Context, table string, q store.Query) ([]store.Row, error) {
	if _, err := store.CheckQuery(table, q); err != nil {
		return nil, err
	}
	opts := options.Find()
	if q.Order != nil {
		dir := -1
		if q.Order.Ascending {
			dir = 1
		}
		opts.SetSort(bson.D{{Key: q.Order.Column, Value: dir}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	if len(q.Columns) > 0 {
		proj := bson.M{"_id": 0}
		for _, c := range q.Columns {
			proj[c] = 1
		}
		opts.SetProjection(proj)
	}

	cur, err := s.db.Collection(table).Find(ctx, toFilter(q.Filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", table, err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find %s: %w", table, err)
	}
	out := make([]store.Row, len(docs))
	for i, d := range docs {
		out[i] = fromBSON(d)
	}
	return out, nil
}

// Insert genera la clave primaria (uuid) y created_at si faltan. _id = clave primaria.
func (s *Store) Insert(ctx context.Context, table string, row store.Row) (store.Row, error) {
	t, err := store.Lookup(table, store.Keys(row)...)
	if err != nil {
		return nil, err
	}
	r := row.Clone()
	if pk := r[t.PrimaryKey]; pk == nil || pk == "" {
		r[t.PrimaryKey] = uuid.New().String()
	}
	if t.Has("created_at") && r["created_at"] == nil {
		r["created_at"] = s.now()
	}
	doc := toBSON(r)
	doc["_id"] = r[t.PrimaryKey]
	if _, err := s.db.Collection(table).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("insert %s: %w: %w", table, store.ErrDuplicate, err)
		}
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	return r, nil
}

// Update aplica $set a los documentos que cumplen filter; devuelve los que coincidieron.
func (s *Store) Update(ctx context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	if len(patch) == 0 {
		return 0, errors.New("update: empty patch")
	}
	cols := append(store.Keys(patch), store.Keys(filter)...)
	if _, err := store.Lookup(table, cols...); err != nil {
		return 0, err
	}
	res, err := s.db.Collection(table).UpdateMany(ctx, toFilter(filter), bson.M{"$set": toBSON(patch)})
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", table, err)
	}
	return res.MatchedCount, nil
}

type changeDoc struct {
	OperationType string `bson:"operationType"`
	FullDocument  bson.M `bson:"fullDocument"`
	DocumentKey   bson.M `bson:"documentKey"`
}

// Subscribe abre un change stream sobre la colección. Unsubscribe cierra el stream.
func (s *Store) Subscribe(ctx context.Context, table string, mask store.EventMask, fn func(store.ChangeEvent)) (store.Subscription, error) {
	if _, err := store.Lookup(table); err != nil {
		return nil, err
	}
	watchCtx, cancel := context.WithCancel(ctx)
	cs, err := s.db.Collection(table).Watch(watchCtx, mongo.Pipeline{},
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch %s: %w", table, err)
	}

	go func() {
		defer func() { _ = cs.Close(context.Background()) }()
		for cs.Next(watchCtx) {
			var ev changeDoc
			if err := cs.Decode(&ev); err != nil {
				s.log.Warn().Err(err).Str("table", table).Msg("evento de change stream ilegible")
				continue
			}
			op := mapOperation(ev.OperationType)
			if op == "" || !mask.Matches(op) {
				continue
			}
			fn(store.ChangeEvent{
				Table: table,
				Op:    op,
				ID:    fmt.Sprint(ev.DocumentKey["_id"]),
				Row:   fromBSON(ev.FullDocument),
			})
		}
		if err := cs.Err(); err != nil && watchCtx.Err() == nil {
			s.log.Error().Err(err).Str("table", table).Msg("change stream finalizado")
		}
	}()
	return store.SubscriptionFunc(cancel), nil
}

func mapOperation(op string) store.EventMask {
	switch op {
	case "insert":
		return store.EventInsert
	case "update", "replace":
		return store.EventUpdate
	case "delete":
		return store.EventDelete
	}
	return ""
}

// TransactionalStore añade WithTx mediante sesiones. Activar solo con replica set (MONGO_TRANSACTIONS=true).
type TransactionalStore struct {
	*Store
}

// NewTransactional construye el almacén con soporte de transacciones.
func NewTransactional(db *mongo.Database, log *logger.Logger) *TransactionalStore {
	return &TransactionalStore{Store: New(db, log)}
}

// WithTx ejecuta fn dentro de session.WithTransaction. El driver puede reintentar fn
// ante errores transitorios (conflictos de escritura), por lo que fn debe releer su estado.
func (s *TransactionalStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	sess, err := s.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(&mongoTx{store: s.Store, sc: sc})
	})
	return err
}

// mongoTx usa el SessionContext para todas las operaciones.
type mongoTx struct {
	store *Store
	sc    mongo.SessionContext
}

func (tx *mongoTx) Select(_ context.Context, table string, q store.Query) ([]store.Row, error) {
	return tx.store.Select(tx.sc, table, q)
}

func (tx *mongoTx) Insert(_ context.Context, table string, row store.Row) (store.Row, error) {
	return tx.store.Insert(tx.sc, table, row)
}

func (tx *mongoTx) Update(_ context.Context, table string, patch store.Row, filter store.Filter) (int64, error) {
	return tx.store.Update(tx.sc, table, patch, filter)
}

func (tx *mongoTx) Subscribe(ctx context.Context, table string, mask store.EventMask, fn func(store.ChangeEvent)) (store.Subscription, error) {
	return tx.store.Subscribe(ctx, table, mask, fn)
}

// Lock escribe el documento del candado: dos transacciones que toman la misma clave
// entran en conflicto de escritura y una de ellas se reintenta.
func (tx *mongoTx) Lock(_ context.Context, key string) error {
	_, err := tx.store.db.Collection(locksCollection).UpdateOne(tx.sc,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"n": 1}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("lock %q: %w", key, err)
	}
	return nil
}
