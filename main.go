package main

import (
	"fmt"
	"os"

	"name-market/internal/chain"
	"name-market/internal/config"
	market "name-market/internal/marketService"
	"name-market/internal/repository"
	"name-market/internal/server"
	"name-market/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	repo := repository.NewMemoryRepo()
	ledger := chain.NewMemoryLedger(seedBalances(cfg.ContractAccount))
	directory := chain.NewMemoryDirectory(seedAccounts(cfg.ContractAccount)...)
	resources := chain.NewMemoryResources()
	env := chain.NewMemoryEnv(chain.WallClock{}, repo, ledger, directory, resources)

	marketSvc := market.NewMarketService(repo, env, ledger, directory, resources, cfg.ContractAccount)

	router := server.SetupRouter(marketSvc)

	fmt.Printf("Starting name market server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedAccounts returns the demo accounts registered at startup
func seedAccounts(contract string) []string {
	return []string{contract, "alice", "bob", "carol", "dave"}
}

// seedBalances funds the demo accounts so the market is usable out of the box
func seedBalances(contract string) map[string]int64 {
	return map[string]int64{
		contract: 0,
		"alice":  100_000,
		"bob":    100_000,
		"carol":  100_000,
		"dave":   100_000,
	}
}
