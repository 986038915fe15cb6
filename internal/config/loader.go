package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type config struct {
	host string
	port string

	bufferSize int

	directory string

	pprofEnabled bool
	pprofPort    string
}

func parse(args []string) (*config, error) {
	host := getenv("HOST", "localhost")
	port := getenv("PORT", "4221")

	bufferSize := parseBufferSize()

	directory, err := parseDirectory(args, getenv("DIRECTORY", ""))
	if err != nil {
		return nil, err
	}

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	return &config{
		host:         host,
		port:         port,
		bufferSize:   bufferSize,
		directory:    directory,
		pprofEnabled: pprofEnabled,
		pprofPort:    pprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// parseDirectory applies the optional "--directory <path>" argument pair on
// top of the environment value. Unknown arguments are rejected.
func parseDirectory(args []string, def string) (string, error) {
	if len(args) == 0 {
		return def, nil
	}

	if len(args) != 2 || args[0] != "--directory" {
		return "", fmt.Errorf("usage: expected \"--directory <path>\", got %v", args)
	}

	return args[1], nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", "1024")
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 || size > 1048576 {
		log.Println("Invalid BUFFER_SIZE, falling back to 1024")
		return 1024
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
