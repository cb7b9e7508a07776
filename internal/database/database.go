package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// =============================================
// SCYLLA DB (one keyspace per service)
// =============================================

// ConnectScylla opens a session on the given keyspace using the shared
// SCYLLA_* environment. Returns nil when SCYLLA_HOSTS is unset so callers
// can fall back to the in-memory stores (dev/test mode).
func ConnectScylla(keyspace string) (*gocql.Session, error) {
	hostsEnv := os.Getenv("SCYLLA_HOSTS")
	if hostsEnv == "" {
		log.Println("⚠️  SCYLLA_HOSTS not set — using in-memory storage")
		return nil, nil
	}

	cluster := gocql.NewCluster(strings.Split(hostsEnv, ",")...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 4
	cluster.ReconnectInterval = 1 * time.Second

	if user := os.Getenv("SCYLLA_USERNAME"); user != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: user,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("scylla session for keyspace %s: %w", keyspace, err)
	}

	log.Printf("✅ Connected to ScyllaDB (keyspace %s)", keyspace)
	return session, nil
}

// =============================================
// REDIS
// =============================================

// ConnectRedis returns a client, or nil when REDIS_HOST is unset (every
// Redis-backed feature is optional and degrades to its in-process variant).
func ConnectRedis(ctx context.Context) *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️  REDIS_HOST not set — Redis features disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis connection failed:", err)
	}

	log.Println("✅ Connected to Redis")
	return client
}

// =============================================
// ELASTICSEARCH
// =============================================

// ConnectElastic returns a client, or nil when ELASTIC_URL is unset.
func ConnectElastic() *elasticsearch.Client {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️  ELASTIC_URL not set — product search disabled")
		return nil
	}

	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Fatal("❌ Elasticsearch client creation failed:", err)
	}

	res, err := client.Info()
	if err != nil {
		log.Fatal("❌ Elasticsearch connection failed:", err)
	}
	defer res.Body.Close()

	log.Println("✅ Connected to Elasticsearch")
	return client
}
