package redis_client

import (
	"context"

	"github.com/railmax/railmax/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"

// Connect opens the shared Redis client used for result memoisation. The
// service degrades to uncached operation when this is never called.
func Connect() error {
	address := defaultConnectionAddress
	password := ""

	env := util.GetEnvironmentVariables()

	if env["RAILMAX_REDIS_ADDRESS"] != "" {
		address = env["RAILMAX_REDIS_ADDRESS"]
	}

	if env["RAILMAX_REDIS_PASSWORD"] != "" {
		password = env["RAILMAX_REDIS_PASSWORD"]
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
	})

	statusCmd := Client.Ping(context.Background())
	if err := statusCmd.Err(); err != nil {
		Client = nil

		return err
	}

	return nil
}
