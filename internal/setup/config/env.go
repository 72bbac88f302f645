package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads a dotenv file when present. Deployed environments set
// real variables and ship no file, so a missing file is not an error.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("could not load %s: %v", path, err)
	}
}
