package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/bakerskart/kart/internal/api"
	"github.com/bakerskart/kart/internal/cache"
	"github.com/bakerskart/kart/internal/cart"
	"github.com/bakerskart/kart/internal/config"
	"github.com/bakerskart/kart/internal/domain"
	"github.com/bakerskart/kart/internal/log"
	"github.com/bakerskart/kart/internal/service"
	"github.com/bakerskart/kart/internal/session"
	"github.com/bakerskart/kart/internal/store"
	"github.com/bakerskart/kart/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var doLogin bool
	var doAdminLogin bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&doLogin, "login", false, "sign in to the storefront and exit")
	flag.BoolVar(&doAdminLogin, "admin-login", false, "sign in to the admin area and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("kart %s\n", Version)
		return
	}

	if err := run(doLogin, doAdminLogin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(doLogin, doAdminLogin bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting kart", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	backend, err := store.Open(config.DataPath())
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}
	defer backend.Close()

	creds := session.NewStore(backend)
	ledger := cart.NewLedger(backend)
	responses := cache.New()

	gateway := api.NewGateway(cfg.API.URL, creds)
	client := api.NewClient(gateway)

	account := service.NewAccountService(client, creds, responses, logger)
	catalog := service.NewCatalogService(client, responses, logger)
	orders := service.NewOrderService(client, responses, ledger, cfg.Invoice.Dir, logger)
	admin := service.NewAdminService(client, responses, logger)

	if doLogin || doAdminLogin {
		return runLoginFlow(account, doAdminLogin)
	}

	model := tui.NewModel(account, catalog, orders, admin, creds, ledger, cfg.UI.PageSize)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow handles the initial setup when no API URL is configured
func runSetupFlow(cfg *config.Config) error {
	fmt.Println()
	fmt.Println("Welcome to kart!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	var apiURL string
	for {
		fmt.Print("Enter the BakersKart API URL (e.g., https://api.bakerskart.in/api/v1): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		apiURL = strings.TrimSpace(input)
		if apiURL == "" {
			fmt.Println("API URL cannot be empty. Please try again.")
			continue
		}
		break
	}

	cfg.API.URL = strings.TrimRight(apiURL, "/")
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run kart again to start shopping.")
	return nil
}

// runLoginFlow signs in from the terminal without starting the TUI. The
// session is persisted, so the next kart run starts authenticated.
func runLoginFlow(account *service.AccountService, admin bool) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email or username: ")
	identifier, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	identifier = strings.TrimSpace(identifier)

	fmt.Print("Password: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if admin {
		err = account.LoginAdmin(ctx, identifier, string(secret))
	} else {
		err = account.LoginUser(ctx, identifier, string(secret))
	}
	if err != nil {
		return fmt.Errorf("login failed: %s", domain.UserMessage(err, err.Error()))
	}

	fmt.Printf("✓ Signed in as %s\n", identifier)
	return nil
}
