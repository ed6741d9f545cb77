package config

import "os"

func IsDebug() bool {
	return os.Getenv("REPLKIT_DEBUG") == "1"
}
