package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"MedicalAssistant/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrCacheMiss = errors.New("redis: prediction not cached")

const keyPrefix = "diagnosis:prediction"

type IRedis interface {
	GetPredictions(ctx context.Context, key string) ([]entity.Prediction, error)
	SetPredictions(ctx context.Context, key string, predictions []entity.Prediction) error
}

// store is the part of the go-redis client the cache needs.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisClient struct {
	client store
	ttl    time.Duration
	log    *logrus.Logger
}

// New connects using REDIS_ADDRESS, REDIS_PASSWORD and REDIS_DB. An
// unreachable server is logged, not returned; every cache call then fails
// and callers fall back to the classifier.
func New(log *logrus.Logger, ttl time.Duration) IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")

	log.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return NewWithClient(client, ttl, log)
}

func NewWithClient(client store, ttl time.Duration, log *logrus.Logger) IRedis {
	return &redisClient{client: client, ttl: ttl, log: log}
}

// PredictionKey identifies a prediction by classifier variant, model
// fingerprint and the sorted symptom identifiers. Predictions carry
// canonical names only, so the key does not depend on the language.
func PredictionKey(variant, fingerprint string, symptoms entity.SymptomSet) string {
	return keyPrefix + ":" + variant + ":" + fingerprint + ":" + strings.Join(symptoms.Sorted(), ",")
}

func (r *redisClient) GetPredictions(ctx context.Context, key string) ([]entity.Prediction, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		r.log.WithField("key", key).Debug("[redis.GetPredictions] cache miss")
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var predictions []entity.Prediction
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(val, &predictions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return predictions, nil
}

func (r *redisClient) SetPredictions(ctx context.Context, key string, predictions []entity.Prediction) error {
	val, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(predictions)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
