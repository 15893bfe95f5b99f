package config

import "os"

// Config holds core server and datastore settings
type Config struct {
	Env       string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
}

// Load reads core configuration from the environment
func Load() *Config {
	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "claimconnect"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnv("PORT", "8080"),
	}
}

// IsSimulation reports whether submissions should be simulated instead of
// hitting live vendor endpoints
func (c *Config) IsSimulation() bool {
	return c.Env != "production"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
