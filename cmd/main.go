package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/tideswap/tideswap/chain"
	"github.com/tideswap/tideswap/config"
	"github.com/tideswap/tideswap/daemon"
	"github.com/tideswap/tideswap/database"
	"github.com/tideswap/tideswap/ethereum"
	"github.com/tideswap/tideswap/lightning"
	"github.com/tideswap/tideswap/lightning/lnd"
	"github.com/tideswap/tideswap/swaps"
	"github.com/tideswap/tideswap/wallet"

	"github.com/tideswap/tideswap/bitcoin"
	_ "github.com/tideswap/tideswap/logging"
)

const version = "1.0.0"

func validatePort(port int64) (uint32, error) {
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("port number %d is invalid: must be between 0 and 65535", port)
	}

	return uint32(port), nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigChan
		log.Info("Received signal, shutting down")
		cancel()
	}()

	app := &cli.Command{
		Name:  "tideswapd",
		Usage: "The tideswap atomic swap daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the YAML configuration file",
				Value: "tideswap.yml",
			},
			&cli.StringFlag{
				Name:  "db-host",
				Usage: "Database host",
				Value: "embedded",
			},
			&cli.StringFlag{
				Name:  "db-user",
				Usage: "Database username",
				Value: "tideswap",
			},
			&cli.StringFlag{
				Name:  "db-password",
				Usage: "Database password",
				Value: "tideswap",
			},
			&cli.StringFlag{
				Name:  "db-name",
				Usage: "Database name",
				Value: "postgres",
			},
			&cli.IntFlag{
				Name:  "db-port",
				Usage: "Database port",
				Value: 5433,
			},
			&cli.StringFlag{
				Name:  "db-data-path",
				Usage: "Data path of the embedded database",
				Value: "./.data",
			},
			&cli.StringFlag{
				Name:  "wallet-seed",
				Usage: "Hex encoded seed of the swap key chains",
			},
			&cli.BoolFlag{
				Name:  "disable-reverse-swaps",
				Usage: "Do not accept new reverse swaps",
			},
		},
		Action: run,
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	port, err := validatePort(cmd.Int("db-port"))
	if err != nil {
		return err
	}

	db, err := database.NewDatabase(
		cmd.String("db-user"),
		cmd.String("db-password"),
		cmd.String("db-name"),
		port,
		cmd.String("db-host"),
		cmd.String("db-data-path"),
	)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			log.Errorf("could not stop database: %v", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		return err
	}

	var seed []byte
	if encoded := cmd.String("wallet-seed"); encoded != "" {
		seed, err = hex.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("could not decode wallet seed: %w", err)
		}
	}

	currencies, wallets, zeroConfLimits, tokenChains, err := buildCurrencies(ctx, cfg, seed)
	if err != nil {
		return err
	}

	pairs := make([]*swaps.Pair, 0, len(cfg.Pairs))
	for _, pairCfg := range cfg.Pairs {
		rate := pairCfg.Rate
		if rate == 0 && pairCfg.Base == pairCfg.Quote {
			rate = 1
		}

		pairs = append(pairs, &swaps.Pair{
			Base:  pairCfg.Base,
			Quote: pairCfg.Quote,
			Rate:  rate,
			Limits: swaps.Limits{
				Minimal: pairCfg.MinSwapAmount,
				Maximal: pairCfg.MaxSwapAmount,
			},
			FeePercent:          pairCfg.Fee / 100,
			TimeoutDeltaMinutes: pairCfg.TimeoutDelta,
		})
	}

	rates := swaps.NewRateProvider(nil, time.Duration(cfg.Rates.Interval)*time.Second, zeroConfLimits)
	timeouts := swaps.NewTimeoutDeltaProvider(tokenChains)

	service := swaps.NewService(&swaps.Config{
		Version:    version,
		Currencies: currencies,
		Wallets:    wallets,
		Repository: db,
		Rates:      rates,
		Timeouts:   timeouts,
		Contracts: swaps.Contracts{
			EtherSwap: cfg.Ethereum.EtherSwapAddress,
			ERC20Swap: cfg.Ethereum.ERC20SwapAddress,
		},
		AllowReverseSwaps: !cmd.Bool("disable-reverse-swaps"),
		PrepayMinerFee:    cfg.PrepayMinerFee,
		UseWitnessAddress: cfg.SwapWitnessAddress,
	})

	if err := service.Init(ctx, pairs); err != nil {
		return err
	}

	return daemon.Start(ctx, service, rates)
}

func buildCurrencies(ctx context.Context, cfg *config.Config, seed []byte) (
	map[string]*swaps.Currency,
	map[string]wallet.Wallet,
	map[string]uint64,
	map[string]string,
	error,
) {
	currencies := make(map[string]*swaps.Currency)
	wallets := make(map[string]wallet.Wallet)
	zeroConfLimits := make(map[string]uint64)
	tokenChains := make(map[string]string)

	var provider ethereum.Provider
	if cfg.Ethereum.ProviderURL != "" {
		client, err := ethereum.NewClient(cfg.Ethereum.ProviderURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		provider = client
	}

	etherSymbol := ""
	for _, currencyCfg := range cfg.Currencies {
		if currencyCfg.Kind == "ether" {
			etherSymbol = currencyCfg.Symbol
		}
	}

	for _, currencyCfg := range cfg.Currencies {
		network := lightning.Network(currencyCfg.Network)

		currency := &swaps.Currency{
			Symbol:  currencyCfg.Symbol,
			Network: network,
		}

		switch currencyCfg.Kind {
		case "bitcoin":
			currency.Kind = swaps.CurrencyBitcoinLike

			if currencyCfg.ChainHost != "" {
				chainClient, err := chain.NewBitcoindClient(chain.BitcoindConfig{
					Host:     currencyCfg.ChainHost,
					User:     currencyCfg.ChainUser,
					Password: currencyCfg.ChainPassword,
				})
				if err != nil {
					return nil, nil, nil, nil, err
				}
				currency.Chain = chainClient

				coreWallet, err := wallet.NewCoreWallet(wallet.CoreConfig{
					Host:     currencyCfg.ChainHost,
					User:     currencyCfg.ChainUser,
					Password: currencyCfg.ChainPassword,
					Seed:     seed,
					Params:   bitcoin.ChainParams(currencyCfg.Symbol, network),
				})
				if err != nil {
					return nil, nil, nil, nil, err
				}
				wallets[currencyCfg.Symbol] = coreWallet
			}

			if currencyCfg.LndEndpoint != "" {
				lndClient, err := lnd.NewClient(ctx,
					lnd.WithLndEndpoint(currencyCfg.LndEndpoint),
					lnd.WithMacaroonFilePath(currencyCfg.LndMacaroonPath),
					lnd.WithTLSCertFilePath(currencyCfg.LndTLSCertPath),
					lnd.WithNetwork(network),
				)
				if err != nil {
					return nil, nil, nil, nil, err
				}
				currency.Lightning = lndClient
			}

		case "ether":
			currency.Kind = swaps.CurrencyEther
			currency.Provider = provider

		case "erc20":
			currency.Kind = swaps.CurrencyERC20
			currency.Provider = provider
			if etherSymbol != "" {
				tokenChains[currencyCfg.Symbol] = etherSymbol
			}

		default:
			return nil, nil, nil, nil, fmt.Errorf("unknown currency kind: %s", currencyCfg.Kind)
		}

		if currencyCfg.MaxZeroConfAmount > 0 {
			zeroConfLimits[currencyCfg.Symbol] = currencyCfg.MaxZeroConfAmount
		}

		currencies[currencyCfg.Symbol] = currency
	}

	return currencies, wallets, zeroConfLimits, tokenChains, nil
}
