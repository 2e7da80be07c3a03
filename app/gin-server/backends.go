package main

import (
	"context"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/skillbridge/config"
	"github.com/yoockh/skillbridge/internal/cache"
	"github.com/yoockh/skillbridge/internal/events"
	"github.com/yoockh/skillbridge/internal/providers/github"
	"github.com/yoockh/skillbridge/internal/providers/llm"
	pgrepo "github.com/yoockh/skillbridge/internal/repositories/postgres"
	"github.com/yoockh/skillbridge/internal/storage"
)

// backends builds the optional infrastructure. Anything not configured, or failing to
// connect, degrades to a no-op so the API keeps serving.
type backends struct {
	cfg     *config.Config
	log     *logrus.Logger
	closers []io.Closer
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i].Close()
	}
}

func (b *backends) store(ctx context.Context) (storage.Store, error) {
	switch b.cfg.StorageDriver {
	case "gcs":
		s, err := storage.NewGCSStore(ctx, b.cfg.GCSBucket, b.cfg.GCSCredentialsFile)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, s)
		b.log.WithField("bucket", b.cfg.GCSBucket).Info("resume storage: gcs")
		return s, nil
	case "s3":
		s, err := storage.NewS3Store(ctx, storage.S3Options{
			Bucket:    b.cfg.S3Bucket,
			Region:    b.cfg.S3Region,
			Endpoint:  b.cfg.S3Endpoint,
			AccessKey: b.cfg.S3AccessKey,
			SecretKey: b.cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		b.log.WithField("bucket", b.cfg.S3Bucket).Info("resume storage: s3")
		return s, nil
	default:
		b.log.WithField("dir", b.cfg.UploadDir).Info("resume storage: local")
		return storage.NewLocalStore(b.cfg.UploadDir, b.cfg.UploadURLPrefix)
	}
}

func (b *backends) uploads() pgrepo.ResumeUploadRepository {
	if b.cfg.PostgresURI == "" {
		b.log.Info("POSTGRES_URI not set, resume history disabled")
		return nil
	}
	db, err := config.NewPostgres(b.cfg)
	if err != nil {
		b.log.WithError(err).Warn("postgres unavailable, resume history disabled")
		return nil
	}
	if sqlDB, err := db.DB(); err == nil {
		b.closers = append(b.closers, sqlDB)
	}
	if err := pgrepo.Migrate(db); err != nil {
		b.log.WithError(err).Warn("resume history migration failed, history disabled")
		return nil
	}
	b.log.Info("postgres connected")
	return pgrepo.NewResumeUploadRepo(db)
}

func (b *backends) cache(ctx context.Context) cache.Cache {
	if b.cfg.RedisURL == "" {
		return cache.NopCache{}
	}
	rdb, err := config.NewRedis(ctx, b.cfg)
	if err != nil {
		b.log.WithError(err).Warn("redis unavailable, github discovery cache disabled")
		return cache.NopCache{}
	}
	b.closers = append(b.closers, rdb)
	b.log.Info("redis connected")
	return cache.NewRedisCache(rdb, "skillbridge:")
}

func (b *backends) publisher() events.Publisher {
	if b.cfg.RabbitMQURL == "" {
		return events.NopPublisher{}
	}
	p, err := events.NewRabbitPublisher(b.cfg.RabbitMQURL, b.cfg.EventsQueue)
	if err != nil {
		b.log.WithError(err).Warn("rabbitmq unavailable, skill update events disabled")
		return events.NopPublisher{}
	}
	b.closers = append(b.closers, p)
	b.log.WithField("queue", b.cfg.EventsQueue).Info("rabbitmq connected")
	return p
}

func (b *backends) llm(ctx context.Context, hc *http.Client) llm.Provider {
	entry := b.log.WithField("provider", b.cfg.LLMProvider)

	var (
		p   llm.Provider
		err error
	)
	switch b.cfg.LLMProvider {
	case "gemini":
		if b.cfg.GeminiAPIKey == "" {
			break
		}
		p, err = llm.NewGemini(ctx, b.cfg.GeminiAPIKey, b.cfg.GeminiModel, hc)
	case "vertex":
		if b.cfg.VertexProject == "" {
			break
		}
		p, err = llm.NewVertexGemini(ctx, b.cfg.VertexProject, b.cfg.VertexLocation, b.cfg.VertexModel)
	default:
		if b.cfg.OpenAIAPIKey == "" {
			break
		}
		p = llm.NewOpenAI(llm.OpenAIOptions{APIKey: b.cfg.OpenAIAPIKey, Model: b.cfg.OpenAIModel, HTTPClient: hc})
	}

	if err != nil {
		entry.WithError(err).Warn("ai provider init failed, keyword fallback only")
		return llm.Unavailable{}
	}
	if p == nil {
		entry.Warn("ai provider not configured, keyword fallback only")
		return llm.Unavailable{}
	}
	b.closers = append(b.closers, closerFunc(p.Close))
	entry.Info("ai provider ready")
	return p
}

func (b *backends) github(hc *http.Client) (*github.Client, error) {
	return github.NewClient(hc, b.cfg.GitHubToken, "")
}
