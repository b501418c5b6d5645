// Command adminctl crea el primer admin y prueba credenciales contra una API en marcha.
//
//	adminctl -url http://localhost:8080 register -u admin -p secret
//	adminctl login -u admin -p secret
//	adminctl applications -u admin -p secret
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logger.New(logger.Options{Level: logger.Info, Output: stderr, App: "adminctl"})

	global := flag.NewFlagSet("adminctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	baseURL := global.String("url", envOr("ADOPTION_API_URL", "http://localhost:8080"), "base URL de la API")
	timeout := global.Duration("timeout", httpclient.DefaultTimeout, "timeout por request")
	if err := global.Parse(args); err != nil {
		return 2
	}

	rest := global.Args()
	if len(rest) == 0 {
		fmt.Fprintln(stderr, "usage: adminctl [-url URL] register|login|applications -u USER -p PASS")
		return 2
	}
	cmd, cmdArgs := rest[0], rest[1:]

	sub := flag.NewFlagSet(cmd, flag.ContinueOnError)
	sub.SetOutput(stderr)
	user := sub.String("u", "", "username")
	pass := sub.String("p", os.Getenv("ADMIN_PASSWORD"), "password (o ADMIN_PASSWORD)")
	if err := sub.Parse(cmdArgs); err != nil {
		return 2
	}
	if *user == "" || *pass == "" {
		fmt.Fprintln(stderr, "username (-u) and password (-p) are required")
		return 2
	}

	client, err := httpclient.New(*baseURL, *timeout)
	if err != nil {
		log.Error("bad url", map[string]any{"error": err})
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*(*timeout))
	defer cancel()

	switch cmd {
	case "register":
		msg, err := client.Register(ctx, *user, *pass)
		if err != nil {
			log.Error("register failed", map[string]any{"error": err, "status": httpclient.StatusOf(err)})
			return 1
		}
		fmt.Fprintln(stdout, msg)

	case "login":
		tok, err := client.Login(ctx, *user, *pass)
		if err != nil {
			log.Error("login failed", map[string]any{"error": err, "status": httpclient.StatusOf(err)})
			return 1
		}
		fmt.Fprintln(stdout, tok)

	case "applications":
		tok, err := client.Login(ctx, *user, *pass)
		if err != nil {
			log.Error("login failed", map[string]any{"error": err, "status": httpclient.StatusOf(err)})
			return 1
		}
		items, err := client.Applications(ctx, tok)
		if err != nil {
			log.Error("list applications failed", map[string]any{"error": err})
			return 1
		}
		for _, a := range items {
			fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\t%s\n",
				a.CreatedAt.Format(time.RFC3339), a.PetName, a.Name, logger.RedactEmail(a.Email), a.ID)
		}

	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return 2
	}
	return 0
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
