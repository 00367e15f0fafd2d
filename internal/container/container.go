package container

import (
	"sync"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cybertrain-io/cybertrain/config"
	"github.com/cybertrain-io/cybertrain/pkg/helpers"
)

// Package container holds the infrastructure singletons wired at startup.
// Optional backends (Redis, Elasticsearch, GCS, RabbitMQ) may stay nil when
// not configured; consumers degrade gracefully.

var (
	mu     sync.RWMutex
	cfg    *config.Config
	logger *logrus.Logger
	pool   *pgxpool.Pool
	rdb    *redis.Client
	es     *elasticsearch.Client
	gcs    *storage.Client
	jwt    *helpers.JWTManager
	rabbit *helpers.RabbitPublisher
)

func SetConfig(c *config.Config) { mu.Lock(); defer mu.Unlock(); cfg = c }
func GetConfig() *config.Config  { mu.RLock(); defer mu.RUnlock(); return cfg }

func SetLogger(l *logrus.Logger) { mu.Lock(); defer mu.Unlock(); logger = l }
func GetLogger() *logrus.Logger  { mu.RLock(); defer mu.RUnlock(); return logger }

func SetPGPool(p *pgxpool.Pool) { mu.Lock(); defer mu.Unlock(); pool = p }
func GetPGPool() *pgxpool.Pool  { mu.RLock(); defer mu.RUnlock(); return pool }

func SetRedis(c *redis.Client) { mu.Lock(); defer mu.Unlock(); rdb = c }
func GetRedis() *redis.Client  { mu.RLock(); defer mu.RUnlock(); return rdb }

func SetES(c *elasticsearch.Client) { mu.Lock(); defer mu.Unlock(); es = c }
func GetES() *elasticsearch.Client  { mu.RLock(); defer mu.RUnlock(); return es }

func SetGCS(c *storage.Client) { mu.Lock(); defer mu.Unlock(); gcs = c }
func GetGCS() *storage.Client  { mu.RLock(); defer mu.RUnlock(); return gcs }

func SetJWT(m *helpers.JWTManager) { mu.Lock(); defer mu.Unlock(); jwt = m }
func GetJWT() *helpers.JWTManager  { mu.RLock(); defer mu.RUnlock(); return jwt }

func SetRabbit(p *helpers.RabbitPublisher) { mu.Lock(); defer mu.Unlock(); rabbit = p }
func GetRabbit() *helpers.RabbitPublisher  { mu.RLock(); defer mu.RUnlock(); return rabbit }
