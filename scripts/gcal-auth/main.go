// gcal-auth authorizes calendar export for OAuth desktop credentials and saves
// the token that the API server reads from google_calendar.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json] [token.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := "google-credentials.json"
	tokenPath := "token.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (expected an OAuth desktop app credentials file)", err)
	}

	fmt.Println("1. Open this URL and sign in with the account that owns the trip calendar:")
	fmt.Println()
	fmt.Println(config.AuthCodeURL("trip-planner", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nSaved %s. Set GOOGLE_CALENDAR_TOKEN_PATH to it and restart the API.\n", tokenPath)
}
