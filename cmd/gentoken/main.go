// Test program to generate caller tokens for local development
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"codecamp/config"
	"codecamp/internal/adapters/auth"
	"codecamp/internal/domain"
)

func main() {
	userID := flag.Int("user", 1, "user id")
	moduleID := flag.Int("module", 0, "module the permissions apply to")
	actions := flag.String("actions", "VIEW", "comma separated module actions (VIEW, EDIT)")
	superuser := flag.Bool("superuser", false, "grant the superuser flag")
	admin := flag.Bool("admin", false, "grant the administrator role")
	tz := flag.String("tz", "", "IANA time zone carried in the token")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	caller := domain.Caller{UserID: *userID}
	if *superuser {
		caller.Capabilities = append(caller.Capabilities, domain.Superuser{})
	}
	if *admin {
		caller.Capabilities = append(caller.Capabilities, domain.AdminRole{})
	}
	if *moduleID > 0 {
		for _, a := range strings.Split(*actions, ",") {
			if a = strings.ToUpper(strings.TrimSpace(a)); a != "" {
				caller.Capabilities = append(caller.Capabilities, domain.ModulePermission{ModuleID: *moduleID, Action: domain.Action(a)})
			}
		}
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.AdminRoleName).Issue(caller, *tz, *expiry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("JWT Token:")
	fmt.Println(token)
	fmt.Println("\nTest with:")
	fmt.Printf("curl -H 'Authorization: Bearer %s' -H 'X-Module-Id: %s' http://localhost:%s/api/events\n",
		token, strconv.Itoa(*moduleID), cfg.Port)
}
