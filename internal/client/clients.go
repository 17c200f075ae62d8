package client

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/reelmatch/backend/internal/dto"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

type Clients interface {
	AuthClient() AuthClient
	BrokerClient() BrokerClient
	CatalogClient() CatalogClient
}

type clients struct {
	authClient    AuthClient
	brokerClient  BrokerClient
	catalogClient CatalogClient
}

func (c clients) AuthClient() AuthClient {
	return c.authClient
}

func (c clients) BrokerClient() BrokerClient {
	return c.brokerClient
}

func (c clients) CatalogClient() CatalogClient {
	return c.catalogClient
}

func NewClients(cfg dto.Config) Clients {
	decodedFirebaseKey, err := cfg.DecodeFirebaseKey()
	if err != nil {
		logrus.Panic(err)
	}
	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsJSON(decodedFirebaseKey))
	if err != nil {
		logrus.Panic(err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logrus.Panic(err)
	}

	brokerClient := NewBrokerClient(cfg)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Panic(err)
		}
		redisClient = redis.NewClient(opts)
	}

	catalogClient := NewCatalogClient(cfg, redisClient)

	return &clients{
		authClient:    authClient,
		brokerClient:  brokerClient,
		catalogClient: catalogClient,
	}
}
