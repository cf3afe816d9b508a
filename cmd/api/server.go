package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	mw "github.com/shravya312/Online-book-Store/internal/api/middlewares"
	"github.com/shravya312/Online-book-Store/internal/api/router"
	"github.com/shravya312/Online-book-Store/internal/metrics/viewqueue"
	"github.com/shravya312/Online-book-Store/internal/repository/sqlconnect"
	"github.com/shravya312/Online-book-Store/internal/validate"
)

func main() {
	_ = godotenv.Load()

	if err := validate.Env(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}
	for _, warn := range validate.HardeningWarnings(os.Getenv("APP_ENV")) {
		log.Printf("[startup] %s", warn)
	}

	// The API starts even when the database is unreachable; requests fail
	// at call time until it comes back.
	db, err := sqlconnect.ConnectDB()
	if err != nil {
		log.Fatalf("invalid database configuration: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the list cache and rate limiting are
	// simply disabled.
	rdb := connectRedis()

	viewqueue.Start(db, 10000, 2)
	defer viewqueue.Shutdown()

	handler := router.Router(db, rdb)

	chain := []func(http.Handler) http.Handler{
		mw.Cors,
		mw.ResponseTime,
		mw.HPP(mw.DefaultHPPOptions()),
	}
	if rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		chain = append(chain, tb.Middleware, sw.Middleware)
	}
	chain = append(chain,
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
		mw.RequestID,
		mw.Recovery,
	)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":5000"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      applyMiddleware(handler, chain...),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Server is running on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// applyMiddleware wraps h so the first middleware in the list is the
// outermost one.
func applyMiddleware(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// connectRedis builds a client from UPSTASH_REDIS_URL (full URL, preferred)
// or REDIS_ADDR/REDIS_USER/REDIS_PASSWORD. Returns nil when neither is set
// or the instance is unreachable.
func connectRedis() *redis.Client {
	var rdb *redis.Client

	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
		if err != nil {
			log.Printf("[redis] invalid UPSTASH_REDIS_URL: %v (continuing without Redis)", err)
			return nil
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		return nil
	}

	if err := validate.PingRedis(rdb, 2*time.Second); err != nil {
		log.Printf("[redis] unreachable: %v (continuing without Redis)", err)
		_ = rdb.Close()
		return nil
	}
	log.Println("Connected to Redis")
	return rdb
}
