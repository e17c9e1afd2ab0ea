package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/internal/provider"
	"github.com/apivault/apivault/internal/runner"
	"github.com/apivault/apivault/internal/service"
	"github.com/apivault/apivault/models"
)

type app struct {
	sync      *service.SyncService
	workspace *service.WorkspaceService
	runner    *runner.Runner
	logger    *logger.Logger
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.status(ctx)
	}

	switch args[0] {
	case "status":
		return a.status(ctx)
	case "sync":
		return a.sync.FullSync(ctx)
	case "push":
		return a.sync.PushOnce(ctx)
	case "pull":
		return a.sync.PullOnce(ctx)
	case "provider":
		return a.initProvider(ctx, args[1:])
	case "signup":
		return a.signUp(ctx, args[1:])
	case "login":
		return a.signIn(ctx, args[1:])
	case "authurl":
		return a.authURL()
	case "exchange":
		return a.exchangeCode(ctx, args[1:])
	case "refresh":
		return a.sync.RefreshToken(ctx)
	case "logout":
		return a.sync.Logout(ctx)
	case "schema":
		return a.sync.EnsureRemoteSchema(ctx)
	case "list":
		return a.list(ctx)
	case "send":
		return a.send(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q (expected status, sync, push, pull, provider, signup, login, authurl, exchange, refresh, logout, schema, list or send)", args[0])
	}
}

func (a *app) status(ctx context.Context) error {
	status, err := a.sync.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("authenticated: %v\n", status.IsAuthenticated)
	fmt.Printf("unsynced: %d collections, %d requests, %d environments\n",
		status.UnsyncedCollections, status.UnsyncedRequests, status.UnsyncedEnvironments)
	if status.LastSync != nil {
		fmt.Printf("last sync: %s\n", status.LastSync.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// initProvider selects a sync backend: `provider <id> <config.json>` where
// the file holds a models.ProviderConfig document.
func (a *app) initProvider(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: provider <api_server|postgrest|drive> <config.json>")
	}

	id, err := provider.ParseID(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read provider config: %w", err)
	}
	var cfg models.ProviderConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("decode provider config: %w", err)
	}

	return a.sync.Initialize(ctx, id, cfg)
}

func (a *app) signUp(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: signup <email> <password> [name]")
	}
	name := ""
	if len(args) > 2 {
		name = args[2]
	}

	token, err := a.sync.SignUp(ctx, args[0], args[1], name)
	if err != nil {
		return err
	}
	fmt.Printf("registered as %s\n", token.User.Email)
	return nil
}

func (a *app) signIn(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}

	token, err := a.sync.SignIn(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", token.User.Email)
	return nil
}

// authURL starts the browser-based authorization flow. The printed state
// must come back with the code via `exchange`, in the same process: the
// verifier it selects lives only in memory.
func (a *app) authURL() error {
	url, state, err := a.sync.AuthURL()
	if err != nil {
		return err
	}
	fmt.Printf("open in a browser:\n%s\n\nthen run: exchange <code> %s\n", url, state)
	return nil
}

func (a *app) exchangeCode(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: exchange <code> <state>")
	}

	token, err := a.sync.ExchangeCode(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", token.User.Email)
	return nil
}

func (a *app) list(ctx context.Context) error {
	collections, err := a.workspace.ListCollections(ctx)
	if err != nil {
		return err
	}
	requests, err := a.workspace.ListRequests(ctx)
	if err != nil {
		return err
	}

	for _, c := range collections {
		fmt.Printf("collection %s  %s\n", c.ID, c.Name)
	}
	for _, r := range requests {
		fmt.Printf("request    %s  %-7s %s  %s\n", r.ID, r.Method, r.Name, r.URL)
	}
	return nil
}

// send executes a saved request by name with the active environment.
func (a *app) send(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: send <request name>")
	}
	name := strings.Join(args, " ")

	requests, err := a.workspace.ListRequests(ctx)
	if err != nil {
		return err
	}
	var target *models.HTTPRequest
	for i := range requests {
		if requests[i].Name == name {
			target = &requests[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no saved request named %q", name)
	}

	env, err := a.workspace.ActiveEnvironment(ctx)
	if err != nil {
		return err
	}

	resp, err := a.runner.Execute(ctx, *target, env)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %dms  %d bytes\n", resp.StatusText, resp.ResponseTime, resp.Size)
	fmt.Println(resp.Body)
	return nil
}
