package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	StoreURL          string
	StoreAPIKey       string
	TemplateURL       string
	TesseractDataPath string
	FetchTimeout      time.Duration
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	storeURL := os.Getenv("STORE_URL")
	if storeURL == "" {
		storeURL = "http://localhost:54321"
	}

	templateURL := os.Getenv("TEMPLATE_URL")
	if templateURL == "" {
		// Template asset lives in the public documents bucket of the record store.
		templateURL = storeURL + "/storage/v1/object/public/documents/templates/form49a-template.pdf"
	}

	tessdataPath := os.Getenv("TESSDATA_PREFIX")
	if tessdataPath == "" {
		tessdataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	fetchTimeout := 30 * time.Second
	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			fetchTimeout = time.Duration(secs) * time.Second
		}
	}

	return &Config{
		ServerPort:        serverPort,
		StoreURL:          storeURL,
		StoreAPIKey:       os.Getenv("STORE_API_KEY"),
		TemplateURL:       templateURL,
		TesseractDataPath: tessdataPath,
		FetchTimeout:      fetchTimeout,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
