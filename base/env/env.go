package env

import (
	"os"
)

// AppName example: storefront-api
func AppName() string {
	return os.Getenv("APP_NAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}
