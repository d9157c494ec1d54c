package initializers

import (
	"context"
	"log"
	"os"

	"github.com/melodias-store/melodias-api/cart"
	"github.com/redis/go-redis/v9"
)

// CartStore holds the session carts. The cart values themselves are
// per-session; this is only the connection handle.
var CartStore cart.Store

func ConnectToRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, keeping session carts in memory.")
		CartStore = cart.NewMemoryStore()
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	CartStore = cart.NewRedisStore(client)
	log.Println("Connected to Redis.")
}
