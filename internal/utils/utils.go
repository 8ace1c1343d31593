package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string)

	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// ProcessedFilename derives the default output filename for an input lyrics
// file, e.g. "song.txt" becomes "song (Lyrics Processed).txt".
func ProcessedFilename(inputFilename string) string {
	dot := strings.LastIndex(inputFilename, ".")
	if dot <= 0 {
		return inputFilename + " (Lyrics Processed)"
	}
	return fmt.Sprintf("%s (Lyrics Processed)%s", inputFilename[:dot], inputFilename[dot:])
}
