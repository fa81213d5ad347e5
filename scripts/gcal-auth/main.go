// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access for an OAuth
// desktop client and store the resulting token.
//
// Usage:
//   go run ./scripts/gcal-auth -credentials credentials.json [-token-store keyring]
//
// It prints a browser URL, you log in with your Google account, paste the
// authorization code, and the token is saved where birthday-sync reads it.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"birthday-calendar-sync/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "credentials.json", "OAuth desktop app client secret")
	storeKind := flag.String("token-store", gcalendar.TokenStoreFile, "where to save the token: file or keyring")
	tokenPath := flag.String("token-path", gcalendar.DefaultTokenPath, "token file for the file store")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	store, err := gcalendar.NewTokenStore(*storeKind, *tokenPath)
	if err != nil {
		log.Fatal(err)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := store.Save(tok); err != nil {
		log.Fatalf("Failed to save token: %v", err)
	}

	client, err := gcalendar.NewClientFromCredentialsJSON(ctx, data, gcalendar.WithTokenStore(store))
	if err != nil {
		log.Fatalf("Token saved but the calendar client failed: %v", err)
	}
	cals, err := client.ListCalendars(ctx)
	if err != nil {
		log.Fatalf("Token saved but listing calendars failed: %v", err)
	}

	fmt.Println()
	fmt.Printf("Token saved (%s store). %d calendar(s) visible:\n", *storeKind, len(cals))
	for _, c := range cals {
		fmt.Printf("  %-40s %s\n", c.Summary, c.ID)
	}
}
