package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"sobreaviso/backend/config"
)

// ErrCacheMiss chave ausente (ou expirada) no cache
var ErrCacheMiss = errors.New("cache miss")

// Client encapsula a conexão Redis
// Usos atuais: blacklist de tokens e cache da projeção pública de plantões
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient abre a conexão Redis e executa um Ping de verificação
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}

	logger.Info("Redis conectado", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Blacklist de tokens ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken adiciona o JTI à blacklist com TTL igual à validade restante do token
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token já expirado, nada a registrar
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted verifica se o JTI está na blacklist
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── Cache de respostas pré-computadas ──

// GetCached lê o payload serializado armazenado em key
func (c *Client) GetCached(ctx context.Context, key string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrCacheMiss
	}
	return b, err
}

// SetCached grava o payload serializado com TTL
func (c *Client) SetCached(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, payload, ttl).Err()
}

// AcquireRefreshLock tenta adquirir o lock de recomputação (evita dois
// recálculos simultâneos da mesma chave). Retorna true se adquiriu.
func (c *Client) AcquireRefreshLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, key+":lock", "1", ttl).Result()
}

// ReleaseRefreshLock libera o lock de recomputação
func (c *Client) ReleaseRefreshLock(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key+":lock").Err()
}

// ── Limitação de taxa ──

// CheckRateLimit incrementa o contador da janela corrente e devolve
// false quando o limite foi excedido. O TTL é definido na primeira
// requisição da janela.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// Close encerra a conexão Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}
